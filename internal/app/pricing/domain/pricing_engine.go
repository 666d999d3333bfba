package domain

import (
	"sort"
)

// PricingEngine computes booking price breakdowns.
//
// The engine is stateless and never reads the current time: every date it compares
// comes from the input. It is safe for concurrent use.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// rangeGuard records the first money step whose result left the representable range.
type rangeGuard struct {
	err error
}

func (g *rangeGuard) check(step string, m *Money) *Money {
	if g.err == nil && !m.InRange() {
		g.err = &OverflowError{Step: step, Amount: m.String()}
	}
	return m
}

// Calculate prices one booking. It either returns a complete breakdown or fails before
// any computation with an error matching ErrInvalidInput, or with one matching
// ErrArithmeticOverflow when an amount leaves the supported range.
func (e *PricingEngine) Calculate(input *PricingInput) (*PricingBreakdown, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := &rangeGuard{}
	guests := int64(input.GuestCount)

	// 1. Base aggregation
	hall := g.check("hall_base_price", input.HallBasePrice.Round())
	menuSubtotal := Zero()
	for _, li := range input.LineItems {
		if li.Counts() {
			menuSubtotal = menuSubtotal.Add(li.Total())
		}
	}
	menuSubtotal = g.check("menu_subtotal", menuSubtotal.Round())
	packageSubtotal := Zero()
	if input.PackagePricePerPerson != nil {
		packageSubtotal = g.check("package_subtotal", input.PackagePricePerPerson.MultiplyByInt(guests).Round())
	}
	subtotalBefore := g.check("subtotal_before_discount", SumMoney(hall, menuSubtotal, packageSubtotal))

	// 2. Guest-count tier
	tier := ResolveApplicableTier(input.DiscountTiers, input.GuestCount)
	guestDiscount := Zero()
	if tier != nil {
		guestDiscount = g.check("guest_discount_amount", tier.DiscountAmount(subtotalBefore))
	}
	afterTier := subtotalBefore.Subtract(guestDiscount)

	// 3. Rule filtering and ordering
	passes := partitionRules(input.PricingRules, matchContext{
		eventDate:  input.EventDate,
		eventType:  input.EventType,
		guestCount: input.GuestCount,
		subtotal:   subtotalBefore,
	})

	// 4. Passes, each percentage measured against the running value the pass starts from
	var adjustments []Adjustment
	ruleDiscount, adj := applyPass(passes[RuleTypeDiscount], afterTier, afterTier)
	adjustments = append(adjustments, adj...)
	ruleDiscount = g.check("rule_discount_amount", ruleDiscount)
	subtotalAfter := g.check("subtotal_after_discount", afterTier.Subtract(ruleDiscount))

	surcharge, adj := applyPass(passes[RuleTypeSurcharge], subtotalAfter, nil)
	adjustments = append(adjustments, adj...)
	surcharge = g.check("surcharge_amount", surcharge)
	afterSurcharge := subtotalAfter.Add(surcharge)

	serviceCharge, adj := applyPass(passes[RuleTypeServiceCharge], afterSurcharge, nil)
	adjustments = append(adjustments, adj...)
	serviceCharge = g.check("service_charge_amount", serviceCharge)
	preTax := g.check("pre_tax_total", afterSurcharge.Add(serviceCharge))

	tax, adj := applyPass(passes[RuleTypeTax], preTax, nil)
	adjustments = append(adjustments, adj...)
	tax = g.check("tax_amount", tax)

	commission, adj := applyPass(passes[RuleTypePlatformFee], preTax, nil)
	adjustments = append(adjustments, adj...)
	commission = g.check("platform_commission", commission)

	// 5. Assembly
	totalDiscount := guestDiscount.Add(ruleDiscount)
	grandTotal := g.check("grand_total", preTax.Add(tax))
	perPerson, err := grandTotal.DivideByInt(guests)
	if err != nil {
		return nil, err
	}
	advance := input.advancePaid().Round()
	balanceDue := g.check("balance_due", grandTotal.Subtract(advance))

	if g.err != nil {
		return nil, g.err
	}

	appliedIDs := make([]string, 0, len(adjustments))
	for _, a := range adjustments {
		appliedIDs = append(appliedIDs, a.RuleID)
	}

	return &PricingBreakdown{
		HallBasePrice:          hall,
		MenuSubtotal:           menuSubtotal,
		PackageSubtotal:        packageSubtotal,
		SubtotalBeforeDiscount: subtotalBefore,
		AppliedTier:            tier,
		GuestDiscountAmount:    guestDiscount,
		RuleDiscountAmount:     ruleDiscount,
		TotalDiscount:          totalDiscount,
		SubtotalAfterDiscount:  subtotalAfter,
		SurchargeAmount:        surcharge,
		ServiceChargeAmount:    serviceCharge,
		TaxAmount:              tax,
		PlatformCommission:     commission,
		GrandTotal:             grandTotal,
		PricePerPerson:         perPerson.Round(),
		AdvancePaid:            advance,
		BalanceDue:             balanceDue,
		AppliedRuleIDs:         appliedIDs,
		Adjustments:            adjustments,
	}, nil
}

// partitionRules keeps the matching rules, ordered by priority descending with input
// order breaking ties, grouped by type.
func partitionRules(rules []PricingRule, mc matchContext) map[RuleType][]PricingRule {
	matched := make([]PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.matches(mc) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	passes := make(map[RuleType][]PricingRule, 5)
	for _, r := range matched {
		passes[r.Type] = append(passes[r.Type], r)
	}
	return passes
}

// applyPass applies one pass of same-type rules against base.
//
// A non-cumulative rule is exclusive: it fires only when it is the first rule to fire in
// the pass and then ends the pass; if another rule already fired it is skipped.
// When limit is set the pass total never exceeds it.
func applyPass(rules []PricingRule, base, limit *Money) (*Money, []Adjustment) {
	total := Zero()
	var adjustments []Adjustment
	for _, r := range rules {
		if !r.IsCumulative && len(adjustments) > 0 {
			continue
		}
		amount := r.amountOn(base)
		if limit != nil {
			amount = amount.Min(limit.Subtract(total).FloorAtZero())
		}
		total = total.Add(amount)
		adjustments = append(adjustments, Adjustment{RuleID: r.ID, Type: r.Type, Amount: amount})
		if !r.IsCumulative {
			break
		}
	}
	return total, adjustments
}

// CalculatePackagePrice returns price per person times guest count, rounded.
func CalculatePackagePrice(pricePerPerson *Money, guestCount int) (*Money, error) {
	if err := checkMoney("price_per_person", pricePerPerson); err != nil {
		return nil, err
	}
	if pricePerPerson == nil || pricePerPerson.IsNegative() {
		return nil, invalid("price_per_person", "must be a non-negative amount")
	}
	if guestCount <= 0 {
		return nil, invalid("guest_count", "must be positive, got %d", guestCount)
	}
	total := pricePerPerson.MultiplyByInt(int64(guestCount)).Round()
	if !total.InRange() {
		return nil, &OverflowError{Step: "package_total", Amount: total.String()}
	}
	return total, nil
}
