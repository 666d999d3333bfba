package domain

// Adjustment is the contribution of one fired rule.
type Adjustment struct {
	RuleID string
	Type   RuleType
	Amount *Money
}

// PricingBreakdown is the itemized, immutable result of one calculation.
// All amounts carry two decimal places; only BalanceDue may be negative.
type PricingBreakdown struct {
	HallBasePrice          *Money
	MenuSubtotal           *Money
	PackageSubtotal        *Money
	SubtotalBeforeDiscount *Money

	AppliedTier         *DiscountTier
	GuestDiscountAmount *Money
	RuleDiscountAmount  *Money
	TotalDiscount       *Money

	SubtotalAfterDiscount *Money
	SurchargeAmount       *Money
	ServiceChargeAmount   *Money
	TaxAmount             *Money
	PlatformCommission    *Money

	GrandTotal     *Money
	PricePerPerson *Money
	AdvancePaid    *Money
	BalanceDue     *Money

	AppliedRuleIDs []string
	Adjustments    []Adjustment
}

// AdjustmentTotal sums the adjustments of the given rule type.
func (b *PricingBreakdown) AdjustmentTotal(ruleType RuleType) *Money {
	total := Zero()
	for _, a := range b.Adjustments {
		if a.Type == ruleType {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// CustomerTotal recomputes the customer-facing total from its parts.
// It always equals GrandTotal for a breakdown produced by the engine.
func (b *PricingBreakdown) CustomerTotal() *Money {
	return SumMoney(b.SubtotalAfterDiscount, b.SurchargeAmount, b.ServiceChargeAmount, b.TaxAmount)
}
