package repo

import (
	"encoding/json"
	"fmt"
	"math/big"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_price_calculation"
)

// adjustmentJSON is the stored shape of one entry of the adjustments column.
type adjustmentJSON struct {
	RuleID string `json:"rule_id"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// PriceCalculationRepo implements PriceCalculationRepository for Spanner.
type PriceCalculationRepo struct {
	client *spanner.Client
	model  *m_price_calculation.Model
}

// NewPriceCalculationRepo creates a new PriceCalculationRepo.
func NewPriceCalculationRepo(client *spanner.Client) contracts.PriceCalculationRepository {
	return &PriceCalculationRepo{
		client: client,
		model:  m_price_calculation.NewModel(),
	}
}

// UpsertMut creates a mutation replacing the stored calculation of a booking.
func (r *PriceCalculationRepo) UpsertMut(calc *contracts.PriceCalculation) (*spanner.Mutation, error) {
	data, err := calculationToData(calc)
	if err != nil {
		return nil, err
	}
	return r.model.UpsertMut(data), nil
}

// calculationToData converts a stored calculation to its row.
func calculationToData(calc *contracts.PriceCalculation) (*m_price_calculation.Data, error) {
	b := calc.Breakdown
	if b == nil {
		return nil, fmt.Errorf("calculation %s has no breakdown", calc.CalculationID)
	}

	data := &m_price_calculation.Data{
		BookingID:      calc.BookingID,
		CalculationID:  calc.CalculationID,
		OrganizationID: calc.OrganizationID,
		GuestCount:     int64(calc.GuestCount),
		EventDate:      calc.EventDate,
		EventType:      nullString(calc.EventType),
		AppliedRuleIDs: b.AppliedRuleIDs,
		CalculatedAt:   calc.CalculatedAt,
	}
	if b.AppliedTier != nil {
		data.AppliedTierID = nullString(b.AppliedTier.ID)
	}

	columns := []struct {
		dst *big.Rat
		src *domain.Money
	}{
		{&data.HallBasePrice, b.HallBasePrice},
		{&data.MenuSubtotal, b.MenuSubtotal},
		{&data.PackageSubtotal, b.PackageSubtotal},
		{&data.SubtotalBeforeDiscount, b.SubtotalBeforeDiscount},
		{&data.GuestDiscountAmount, b.GuestDiscountAmount},
		{&data.RuleDiscountAmount, b.RuleDiscountAmount},
		{&data.TotalDiscount, b.TotalDiscount},
		{&data.SubtotalAfterDiscount, b.SubtotalAfterDiscount},
		{&data.SurchargeAmount, b.SurchargeAmount},
		{&data.ServiceChargeAmount, b.ServiceChargeAmount},
		{&data.TaxAmount, b.TaxAmount},
		{&data.PlatformCommission, b.PlatformCommission},
		{&data.GrandTotal, b.GrandTotal},
		{&data.PricePerPerson, b.PricePerPerson},
		{&data.AdvancePaid, b.AdvancePaid},
		{&data.BalanceDue, b.BalanceDue},
	}
	for _, c := range columns {
		v, err := numericFromMoney(c.src)
		if err != nil {
			return nil, err
		}
		c.dst.Set(&v)
	}

	adjustments := make([]adjustmentJSON, 0, len(b.Adjustments))
	for _, a := range b.Adjustments {
		adjustments = append(adjustments, adjustmentJSON{RuleID: a.RuleID, Type: string(a.Type), Amount: a.Amount.String()})
	}
	data.Adjustments = spanner.NullJSON{Value: adjustments, Valid: true}

	return data, nil
}

// dataToCalculation converts a row back to a stored calculation. The applied tier is
// reconstructed by ID only.
func dataToCalculation(data *m_price_calculation.Data) (*contracts.PriceCalculation, error) {
	b := &domain.PricingBreakdown{AppliedRuleIDs: data.AppliedRuleIDs}

	columns := []struct {
		dst **domain.Money
		src *big.Rat
	}{
		{&b.HallBasePrice, &data.HallBasePrice},
		{&b.MenuSubtotal, &data.MenuSubtotal},
		{&b.PackageSubtotal, &data.PackageSubtotal},
		{&b.SubtotalBeforeDiscount, &data.SubtotalBeforeDiscount},
		{&b.GuestDiscountAmount, &data.GuestDiscountAmount},
		{&b.RuleDiscountAmount, &data.RuleDiscountAmount},
		{&b.TotalDiscount, &data.TotalDiscount},
		{&b.SubtotalAfterDiscount, &data.SubtotalAfterDiscount},
		{&b.SurchargeAmount, &data.SurchargeAmount},
		{&b.ServiceChargeAmount, &data.ServiceChargeAmount},
		{&b.TaxAmount, &data.TaxAmount},
		{&b.PlatformCommission, &data.PlatformCommission},
		{&b.GrandTotal, &data.GrandTotal},
		{&b.PricePerPerson, &data.PricePerPerson},
		{&b.AdvancePaid, &data.AdvancePaid},
		{&b.BalanceDue, &data.BalanceDue},
	}
	for _, c := range columns {
		m, err := moneyFromNumeric(c.src)
		if err != nil {
			return nil, err
		}
		*c.dst = m
	}

	if data.AppliedTierID.Valid {
		b.AppliedTier = &domain.DiscountTier{ID: data.AppliedTierID.StringVal}
	}

	if data.Adjustments.Valid {
		adjustments, err := decodeAdjustments(data.Adjustments.Value)
		if err != nil {
			return nil, err
		}
		b.Adjustments = adjustments
	}

	return &contracts.PriceCalculation{
		CalculationID:  data.CalculationID,
		BookingID:      data.BookingID,
		OrganizationID: data.OrganizationID,
		GuestCount:     int(data.GuestCount),
		EventDate:      data.EventDate,
		EventType:      data.EventType.StringVal,
		Breakdown:      b,
		CalculatedAt:   data.CalculatedAt,
	}, nil
}

// decodeAdjustments accepts the column value as read from Spanner (a generic JSON value)
// or as written (a typed slice).
func decodeAdjustments(value interface{}) ([]domain.Adjustment, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode adjustments: %w", err)
	}
	var stored []adjustmentJSON
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode adjustments: %w", err)
	}

	out := make([]domain.Adjustment, 0, len(stored))
	for _, a := range stored {
		amount, err := domain.NewMoney(a.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Adjustment{RuleID: a.RuleID, Type: domain.RuleType(a.Type), Amount: amount})
	}
	return out, nil
}
