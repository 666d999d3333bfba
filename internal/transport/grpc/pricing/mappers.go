package pricing

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
)

const dateLayout = "2006-01-02"

// parseMoney converts a decimal string to Money. An empty optional field yields nil.
// Values outside the supported scale or magnitude are rejected before they reach the domain.
func parseMoney(field, value string, required bool) (*domain.Money, error) {
	if strings.TrimSpace(value) == "" {
		if required {
			return nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
		}
		return nil, nil
	}
	m, err := domain.NewMoney(value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, value)
	}
	if err := domain.CheckBounds(field, m.Decimal()); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return m, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, value)
	}
	if err := domain.CheckBounds(field, d); err != nil {
		return decimal.Zero, mapDomainErrorToGRPC(err)
	}
	return d, nil
}

// parseEventDate accepts a calendar date or an RFC 3339 timestamp.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid event_date: %q", value)
	}
	return t, nil
}

func toMenuItem(msg MenuItemMessage) (domain.MenuItem, error) {
	price, err := parseMoney("base_price of "+msg.ID, msg.BasePrice, true)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return domain.MenuItem{
		ID:           msg.ID,
		Name:         msg.Name,
		CategoryID:   msg.CategoryID,
		BasePrice:    price,
		IsVegetarian: msg.IsVegetarian,
		IsAvailable:  msg.IsAvailable,
		IsEssential:  msg.IsEssential,
	}, nil
}

func toVariant(msg *MenuItemVariantMessage) (*domain.MenuItemVariant, error) {
	if msg == nil {
		return nil, nil
	}
	modifier, err := parseMoney("price_modifier of "+msg.ID, msg.PriceModifier, false)
	if err != nil {
		return nil, err
	}
	return &domain.MenuItemVariant{ID: msg.ID, Name: msg.Name, PriceModifier: modifier}, nil
}

func toPackage(msg *PackageMessage) (*domain.MenuPackage, error) {
	if msg == nil {
		return nil, nil
	}
	price, err := parseMoney("package.price_per_person", msg.PricePerPerson, true)
	if err != nil {
		return nil, err
	}
	pkg := &domain.MenuPackage{ID: msg.ID, Name: msg.Name, PricePerPerson: price}
	for _, pi := range msg.Items {
		item, err := toMenuItem(pi.Item)
		if err != nil {
			return nil, err
		}
		pkg.Items = append(pkg.Items, domain.PackageItem{Item: item, IsOptional: pi.IsOptional, Confirmed: pi.Confirmed})
	}
	return pkg, nil
}

// toPricingRequest maps the wire request. Menu selections are resolved to line items
// after explicit line items, keeping request order.
func toPricingRequest(msg *PricingRequestMessage) (contracts.PricingRequest, error) {
	req := contracts.PricingRequest{
		OrganizationID: msg.OrganizationID,
		GuestCount:     msg.GuestCount,
		EventType:      msg.EventType,
	}

	var err error
	if req.HallBasePrice, err = parseMoney("hall_base_price", msg.HallBasePrice, true); err != nil {
		return req, err
	}
	if req.AdvancePaid, err = parseMoney("advance_paid", msg.AdvancePaid, false); err != nil {
		return req, err
	}
	if req.EventDate, err = parseEventDate(msg.EventDate); err != nil {
		return req, err
	}

	for _, li := range msg.LineItems {
		price, err := parseMoney("unit_price of "+li.Ref, li.UnitPrice, true)
		if err != nil {
			return req, err
		}
		qty, err := parseDecimal("quantity of "+li.Ref, li.Quantity)
		if err != nil {
			return req, err
		}
		req.LineItems = append(req.LineItems, domain.LineItem{
			Ref:        li.Ref,
			Name:       li.Name,
			UnitPrice:  price,
			Quantity:   qty,
			IsOptional: li.IsOptional,
			Confirmed:  li.Confirmed,
		})
	}

	for _, sel := range msg.MenuSelections {
		item, err := toMenuItem(sel.Item)
		if err != nil {
			return req, err
		}
		variant, err := toVariant(sel.Variant)
		if err != nil {
			return req, err
		}
		qty, err := parseDecimal("quantity of "+sel.Item.ID, sel.Quantity)
		if err != nil {
			return req, err
		}
		li, err := domain.NewLineItem(item, variant, qty)
		if err != nil {
			return req, err
		}
		req.LineItems = append(req.LineItems, li)
	}

	if req.Package, err = toPackage(msg.Package); err != nil {
		return req, err
	}
	return req, nil
}

func moneyString(m *domain.Money) string {
	if m == nil {
		return domain.Zero().String()
	}
	return m.String()
}

func toBreakdownMessage(b *domain.PricingBreakdown) BreakdownMessage {
	msg := BreakdownMessage{
		HallBasePrice:          moneyString(b.HallBasePrice),
		MenuSubtotal:           moneyString(b.MenuSubtotal),
		PackageSubtotal:        moneyString(b.PackageSubtotal),
		SubtotalBeforeDiscount: moneyString(b.SubtotalBeforeDiscount),
		GuestDiscountAmount:    moneyString(b.GuestDiscountAmount),
		RuleDiscountAmount:     moneyString(b.RuleDiscountAmount),
		TotalDiscount:          moneyString(b.TotalDiscount),
		SubtotalAfterDiscount:  moneyString(b.SubtotalAfterDiscount),
		SurchargeAmount:        moneyString(b.SurchargeAmount),
		ServiceChargeAmount:    moneyString(b.ServiceChargeAmount),
		TaxAmount:              moneyString(b.TaxAmount),
		PlatformCommission:     moneyString(b.PlatformCommission),
		GrandTotal:             moneyString(b.GrandTotal),
		PricePerPerson:         moneyString(b.PricePerPerson),
		AdvancePaid:            moneyString(b.AdvancePaid),
		BalanceDue:             moneyString(b.BalanceDue),
		AppliedRuleIDs:         append([]string{}, b.AppliedRuleIDs...),
		Adjustments:            make([]AdjustmentMessage, 0, len(b.Adjustments)),
	}
	if b.AppliedTier != nil {
		msg.AppliedTier = &TierMessage{ID: b.AppliedTier.ID, Name: b.AppliedTier.Name}
		if !b.AppliedTier.DiscountPercentage.IsZero() {
			msg.AppliedTier.DiscountPercentage = b.AppliedTier.DiscountPercentage.String()
		}
	}
	for _, a := range b.Adjustments {
		msg.Adjustments = append(msg.Adjustments, AdjustmentMessage{RuleID: a.RuleID, Type: string(a.Type), Amount: moneyString(a.Amount)})
	}
	return msg
}

func toCalculationMessage(calc *contracts.PriceCalculation) PriceCalculationMessage {
	return PriceCalculationMessage{
		CalculationID:  calc.CalculationID,
		BookingID:      calc.BookingID,
		OrganizationID: calc.OrganizationID,
		GuestCount:     calc.GuestCount,
		EventDate:      calc.EventDate.Format(dateLayout),
		EventType:      calc.EventType,
		CalculatedAt:   calc.CalculatedAt.UTC().Format(time.RFC3339Nano),
		Breakdown:      toBreakdownMessage(calc.Breakdown),
	}
}

func toBudgetRequest(msg *SuggestMenuRequest) (*domain.BudgetRequest, error) {
	target, err := parseMoney("target_budget", msg.TargetBudget, true)
	if err != nil {
		return nil, err
	}
	hall, err := parseMoney("hall_base_price", msg.HallBasePrice, false)
	if err != nil {
		return nil, err
	}

	req := &domain.BudgetRequest{
		TargetBudget:  target,
		GuestCount:    msg.GuestCount,
		HallBasePrice: hall,
		Preferences: domain.BudgetPreferences{
			ExcludedCategories:  msg.Preferences.ExcludedCategories,
			PreferredCategories: msg.Preferences.PreferredCategories,
			VegetarianOnly:      msg.Preferences.VegetarianOnly,
		},
	}
	if msg.Preferences.TolerancePercentage != "" {
		tol, err := parseDecimal("tolerance_percentage", msg.Preferences.TolerancePercentage)
		if err != nil {
			return nil, err
		}
		req.Preferences.TolerancePercentage = &tol
	}
	for _, it := range msg.Items {
		item, err := toMenuItem(it)
		if err != nil {
			return nil, err
		}
		req.Items = append(req.Items, item)
	}
	return req, nil
}

func toSuggestionMessage(s *domain.BudgetSuggestion) SuggestMenuResponse {
	resp := SuggestMenuResponse{
		Items:                    make([]SuggestedItemMessage, 0, len(s.Items)),
		SuggestedPerPersonBudget: moneyString(s.SuggestedPerPersonBudget),
		TotalEstimatedCost:       moneyString(s.TotalEstimatedCost),
		VariancePercentage:       s.VariancePercentage.StringFixed(2),
		TolerancePercentage:      s.TolerancePercentage.StringFixed(2),
		WithinTolerance:          s.WithinTolerance,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, SuggestedItemMessage{
			ItemID:        it.Item.ID,
			Name:          it.Item.Name,
			CategoryID:    it.Item.CategoryID,
			UnitPrice:     moneyString(it.Item.BasePrice),
			Quantity:      it.Quantity,
			EstimatedCost: moneyString(it.EstimatedCost),
		})
	}
	return resp
}

func toStatusMessage(rec *contracts.BookingStatusRecord) ChangeBookingStatusResponse {
	resp := ChangeBookingStatusResponse{
		BookingID: rec.BookingID,
		Status:    string(rec.Status),
		Version:   rec.Version,
	}
	if rec.ConfirmedAt != nil {
		at := rec.ConfirmedAt.UTC().Format(time.RFC3339Nano)
		resp.ConfirmedAt = &at
	}
	return resp
}

func toEventMessage(data *m_outbox.Data) EventMessage {
	msg := EventMessage{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt.UTC().Format(time.RFC3339Nano),
		RetryCount:  data.RetryCount,
	}
	if data.Payload.Valid {
		if raw, err := json.Marshal(data.Payload.Value); err == nil {
			msg.Payload = string(raw)
		}
	}
	if data.ProcessedAt.Valid {
		at := data.ProcessedAt.Time.UTC().Format(time.RFC3339Nano)
		msg.ProcessedAt = &at
	}
	if data.ErrorMessage.Valid {
		msg.ErrorMessage = data.ErrorMessage.StringVal
	}
	return msg
}
