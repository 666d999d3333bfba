package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday.
var eventDate = time.Date(2026, 6, 13, 18, 0, 0, 0, time.UTC)

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// scenarioInput is hall 50000, 10 x 850 menu, 200 guests and a 151-300 tier at 10%.
func scenarioInput() *PricingInput {
	return &PricingInput{
		HallBasePrice: MustMoney("50000"),
		GuestCount:    200,
		LineItems: []LineItem{
			{Ref: "biryani", UnitPrice: MustMoney("850"), Quantity: decimal.NewFromInt(10)},
		},
		EventDate: eventDate,
		EventType: "wedding",
		DiscountTiers: []DiscountTier{
			{ID: "tier-large", MinGuests: 151, MaxGuests: 300, DiscountPercentage: decimal.NewFromInt(10)},
		},
	}
}

func TestPricingEngine_Scenarios(t *testing.T) {
	engine := NewPricingEngine()

	t.Run("tier discount only", func(t *testing.T) {
		b, err := engine.Calculate(scenarioInput())
		require.NoError(t, err)

		assert.Equal(t, "50000.00", b.HallBasePrice.String())
		assert.Equal(t, "8500.00", b.MenuSubtotal.String())
		assert.Equal(t, "0.00", b.PackageSubtotal.String())
		assert.Equal(t, "58500.00", b.SubtotalBeforeDiscount.String())
		assert.Equal(t, "5850.00", b.GuestDiscountAmount.String())
		assert.Equal(t, "5850.00", b.TotalDiscount.String())
		assert.Equal(t, "52650.00", b.SubtotalAfterDiscount.String())
		assert.Equal(t, "52650.00", b.GrandTotal.String())
		assert.Equal(t, "263.25", b.PricePerPerson.String())
		assert.Equal(t, "52650.00", b.BalanceDue.String())
		require.NotNil(t, b.AppliedTier)
		assert.Equal(t, "tier-large", b.AppliedTier.ID)
		assert.Empty(t, b.AppliedRuleIDs)
	})

	t.Run("cumulative service charge", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "svc", Type: RuleTypeServiceCharge, Percentage: pct("5"), MinGuests: intPtr(200), IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "2632.50", b.ServiceChargeAmount.String())
		assert.Equal(t, "55282.50", b.GrandTotal.String())
		assert.Equal(t, []string{"svc"}, b.AppliedRuleIDs)
	})

	t.Run("advance payment", func(t *testing.T) {
		in := scenarioInput()
		in.AdvancePaid = MustMoney("20000")

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "32650.00", b.BalanceDue.String())
	})

	t.Run("overpayment leaves a negative balance", func(t *testing.T) {
		in := scenarioInput()
		in.AdvancePaid = MustMoney("60000")

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "-7350.00", b.BalanceDue.String())
	})

	t.Run("zero guests is invalid", func(t *testing.T) {
		in := scenarioInput()
		in.GuestCount = 0

		b, err := engine.Calculate(in)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPricingEngine_NoRulesNoTiers(t *testing.T) {
	in := scenarioInput()
	in.DiscountTiers = nil

	b, err := NewPricingEngine().Calculate(in)
	require.NoError(t, err)

	assert.True(t, b.GrandTotal.Equals(b.SubtotalBeforeDiscount))
	assert.Nil(t, b.AppliedTier)
	assert.True(t, b.TotalDiscount.IsZero())
}

func TestPricingEngine_OverlappingTiers(t *testing.T) {
	in := scenarioInput()
	in.DiscountTiers = []DiscountTier{
		{ID: "small", MinGuests: 100, MaxGuests: 250, DiscountPercentage: decimal.NewFromInt(5)},
		{ID: "big", MinGuests: 150, MaxGuests: 300, DiscountPercentage: decimal.NewFromInt(12)},
	}

	b, err := NewPricingEngine().Calculate(in)
	require.NoError(t, err)

	require.NotNil(t, b.AppliedTier)
	assert.Equal(t, "big", b.AppliedTier.ID)
	assert.Equal(t, "7020.00", b.GuestDiscountAmount.String())
}

func TestPricingEngine_Idempotent(t *testing.T) {
	engine := NewPricingEngine()
	in := scenarioInput()
	in.PricingRules = []PricingRule{
		{ID: "weekend", Type: RuleTypeSurcharge, Percentage: pct("7.5"), IsCumulative: true},
		{ID: "gst", Type: RuleTypeTax, Percentage: pct("18"), IsCumulative: true},
	}

	first, err := engine.Calculate(in)
	require.NoError(t, err)
	second, err := engine.Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPricingEngine_NoRoundingDrift(t *testing.T) {
	engine := NewPricingEngine()
	ruleSets := map[string][]PricingRule{
		"odd percentages": {
			{ID: "d1", Type: RuleTypeDiscount, Percentage: pct("3.333"), IsCumulative: true},
			{ID: "s1", Type: RuleTypeSurcharge, FixedAmount: MustMoney("1234.567"), IsCumulative: true},
			{ID: "c1", Type: RuleTypeServiceCharge, Percentage: pct("7.5"), IsCumulative: true},
			{ID: "t1", Type: RuleTypeTax, Percentage: pct("18"), IsCumulative: true},
			{ID: "p1", Type: RuleTypePlatformFee, Percentage: pct("2.5"), IsCumulative: true},
		},
		"several per pass": {
			{ID: "d1", Type: RuleTypeDiscount, Percentage: pct("1.111"), Priority: 2, IsCumulative: true},
			{ID: "d2", Type: RuleTypeDiscount, FixedAmount: MustMoney("99.995"), Priority: 1, IsCumulative: true},
			{ID: "t1", Type: RuleTypeTax, Percentage: pct("9"), IsCumulative: true},
			{ID: "t2", Type: RuleTypeTax, Percentage: pct("9"), IsCumulative: true},
		},
		"none": nil,
	}

	for name, rules := range ruleSets {
		t.Run(name, func(t *testing.T) {
			in := scenarioInput()
			in.GuestCount = 233
			in.LineItems[0].UnitPrice = MustMoney("847.33")
			in.LineItems[0].Quantity = decimal.RequireFromString("3.5")
			in.PricingRules = rules

			b, err := engine.Calculate(in)
			require.NoError(t, err)

			assert.True(t, b.CustomerTotal().Equals(b.GrandTotal), "%s != %s", b.CustomerTotal(), b.GrandTotal)
			assert.True(t, b.SubtotalBeforeDiscount.Subtract(b.TotalDiscount).Equals(b.SubtotalAfterDiscount))
			assert.False(t, b.GrandTotal.IsNegative())
			assert.False(t, b.PricePerPerson.IsNegative())

			adjusted := b.SubtotalBeforeDiscount.Subtract(b.GuestDiscountAmount).
				Subtract(b.AdjustmentTotal(RuleTypeDiscount)).
				Add(b.AdjustmentTotal(RuleTypeSurcharge)).
				Add(b.AdjustmentTotal(RuleTypeServiceCharge)).
				Add(b.AdjustmentTotal(RuleTypeTax))
			assert.True(t, adjusted.Equals(b.GrandTotal))
		})
	}
}

func TestPricingEngine_PassOrdering(t *testing.T) {
	in := &PricingInput{
		HallBasePrice: MustMoney("1000"),
		GuestCount:    10,
		EventDate:     eventDate,
		PricingRules: []PricingRule{
			{ID: "fee", Type: RuleTypePlatformFee, Percentage: pct("2"), IsCumulative: true},
			{ID: "tax", Type: RuleTypeTax, Percentage: pct("18"), IsCumulative: true},
			{ID: "svc", Type: RuleTypeServiceCharge, Percentage: pct("10"), IsCumulative: true},
		},
	}

	b, err := NewPricingEngine().Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, "100.00", b.ServiceChargeAmount.String())
	assert.Equal(t, "198.00", b.TaxAmount.String())
	assert.Equal(t, "22.00", b.PlatformCommission.String())
	assert.Equal(t, "1298.00", b.GrandTotal.String())
	assert.Equal(t, "129.80", b.PricePerPerson.String())
	assert.Equal(t, []string{"svc", "tax", "fee"}, b.AppliedRuleIDs)
}

func TestPricingEngine_NonCumulativeRules(t *testing.T) {
	engine := NewPricingEngine()

	t.Run("exclusive rule first in pass ends the pass", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "small", Type: RuleTypeDiscount, Percentage: pct("2"), Priority: 5, IsCumulative: true},
			{ID: "exclusive", Type: RuleTypeDiscount, Percentage: pct("5"), Priority: 10},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, []string{"exclusive"}, b.AppliedRuleIDs)
		assert.Equal(t, "2632.50", b.RuleDiscountAmount.String())
		assert.Equal(t, "8482.50", b.TotalDiscount.String())
		assert.Equal(t, "50017.50", b.SubtotalAfterDiscount.String())
	})

	t.Run("exclusive rule after another rule is skipped", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "exclusive", Type: RuleTypeDiscount, Percentage: pct("5"), Priority: 10},
			{ID: "early-bird", Type: RuleTypeDiscount, Percentage: pct("2"), Priority: 20, IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, []string{"early-bird"}, b.AppliedRuleIDs)
		assert.Equal(t, "1053.00", b.RuleDiscountAmount.String())
	})

	t.Run("exclusivity does not cross passes", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "exclusive", Type: RuleTypeDiscount, Percentage: pct("5"), Priority: 10},
			{ID: "svc", Type: RuleTypeServiceCharge, Percentage: pct("5"), IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, []string{"exclusive", "svc"}, b.AppliedRuleIDs)
	})

	t.Run("equal priorities keep declaration order", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "x", Type: RuleTypeSurcharge, FixedAmount: MustMoney("100"), Priority: 1, IsCumulative: true},
			{ID: "y", Type: RuleTypeSurcharge, FixedAmount: MustMoney("200"), Priority: 1, IsCumulative: true},
			{ID: "z", Type: RuleTypeSurcharge, FixedAmount: MustMoney("300"), Priority: 3, IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, []string{"z", "x", "y"}, b.AppliedRuleIDs)
		assert.Equal(t, "600.00", b.SurchargeAmount.String())
	})
}

func TestPricingEngine_DiscountsNeverGoNegative(t *testing.T) {
	engine := NewPricingEngine()

	t.Run("single oversized discount", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "comp", Type: RuleTypeDiscount, FixedAmount: MustMoney("100000"), IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "52650.00", b.RuleDiscountAmount.String())
		assert.Equal(t, "0.00", b.SubtotalAfterDiscount.String())
		assert.Equal(t, "0.00", b.GrandTotal.String())
		assert.Equal(t, "0.00", b.PricePerPerson.String())
		assert.True(t, b.SubtotalBeforeDiscount.Subtract(b.TotalDiscount).Equals(b.SubtotalAfterDiscount))
	})

	t.Run("later discount capped at the remainder", func(t *testing.T) {
		in := scenarioInput()
		in.PricingRules = []PricingRule{
			{ID: "a", Type: RuleTypeDiscount, FixedAmount: MustMoney("50000"), Priority: 2, IsCumulative: true},
			{ID: "b", Type: RuleTypeDiscount, FixedAmount: MustMoney("10000"), Priority: 1, IsCumulative: true},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		require.Len(t, b.Adjustments, 2)
		assert.Equal(t, "50000.00", b.Adjustments[0].Amount.String())
		assert.Equal(t, "2650.00", b.Adjustments[1].Amount.String())
		assert.True(t, b.GrandTotal.IsZero())
	})
}

func TestPricingEngine_RuleFiltering(t *testing.T) {
	engine := NewPricingEngine()
	sunday := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rule    PricingRule
		applies bool
	}{
		{"unconditional", PricingRule{}, true},
		{"matching day", PricingRule{ApplicableDays: []time.Weekday{time.Saturday, time.Sunday}}, true},
		{"other day", PricingRule{ApplicableDays: []time.Weekday{time.Monday}}, false},
		{"matching event type", PricingRule{ApplicableEventTypes: []string{"wedding", "reception"}}, true},
		{"other event type", PricingRule{ApplicableEventTypes: []string{"corporate"}}, false},
		{"guest lower bound inclusive", PricingRule{MinGuests: intPtr(200)}, true},
		{"guest lower bound unmet", PricingRule{MinGuests: intPtr(201)}, false},
		{"guest upper bound inclusive", PricingRule{MaxGuests: intPtr(200)}, true},
		{"guest upper bound exceeded", PricingRule{MaxGuests: intPtr(199)}, false},
		{"amount measured before discount", PricingRule{MinAmount: MustMoney("58500")}, true},
		{"amount lower bound unmet", PricingRule{MinAmount: MustMoney("60000")}, false},
		{"amount upper bound exceeded", PricingRule{MaxAmount: MustMoney("58499.99")}, false},
		{"valid from later the same day", PricingRule{ValidFrom: timePtr(eventDate.Add(4 * time.Hour))}, true},
		{"valid from the next day", PricingRule{ValidFrom: timePtr(sunday)}, false},
		{"valid until the same day", PricingRule{ValidUntil: timePtr(time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC))}, true},
		{"expired", PricingRule{ValidUntil: timePtr(time.Date(2026, 6, 12, 23, 59, 0, 0, time.UTC))}, false},
		{"inverted guest bounds never match", PricingRule{MinGuests: intPtr(300), MaxGuests: intPtr(100)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := tt.rule
			rule.ID = "r"
			rule.Type = RuleTypeSurcharge
			rule.FixedAmount = MustMoney("1000")
			rule.IsCumulative = true
			in := scenarioInput()
			in.PricingRules = []PricingRule{rule}

			b, err := engine.Calculate(in)
			require.NoError(t, err)

			if tt.applies {
				assert.Equal(t, []string{"r"}, b.AppliedRuleIDs)
				assert.Equal(t, "1000.00", b.SurchargeAmount.String())
			} else {
				assert.Empty(t, b.AppliedRuleIDs)
				assert.True(t, b.SurchargeAmount.IsZero())
			}
		})
	}
}

func TestPricingEngine_LineItems(t *testing.T) {
	engine := NewPricingEngine()

	t.Run("optional items count only when confirmed", func(t *testing.T) {
		in := scenarioInput()
		in.LineItems = append(in.LineItems,
			LineItem{Ref: "dessert", UnitPrice: MustMoney("120"), Quantity: decimal.NewFromInt(200), IsOptional: true},
			LineItem{Ref: "mocktail", UnitPrice: MustMoney("60"), Quantity: decimal.NewFromInt(200), IsOptional: true, Confirmed: true},
		)

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "20500.00", b.MenuSubtotal.String())
	})

	t.Run("package priced per guest", func(t *testing.T) {
		in := scenarioInput()
		in.LineItems = nil
		in.PackagePricePerPerson = MustMoney("1200")

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "240000.00", b.PackageSubtotal.String())
		assert.Equal(t, "290000.00", b.SubtotalBeforeDiscount.String())
	})

	t.Run("menu subtotal rounds half up", func(t *testing.T) {
		in := &PricingInput{
			HallBasePrice: Zero(),
			GuestCount:    1,
			EventDate:     eventDate,
			LineItems:     []LineItem{{UnitPrice: MustMoney("10.005"), Quantity: decimal.NewFromInt(1)}},
		}

		b, err := engine.Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, "10.01", b.MenuSubtotal.String())
		assert.Equal(t, "10.01", b.GrandTotal.String())
	})
}

func TestPricingEngine_InvalidInput(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name   string
		mutate func(in *PricingInput)
	}{
		{"negative guests", func(in *PricingInput) { in.GuestCount = -5 }},
		{"missing hall price", func(in *PricingInput) { in.HallBasePrice = nil }},
		{"negative hall price", func(in *PricingInput) { in.HallBasePrice = MustMoney("-1") }},
		{"negative unit price", func(in *PricingInput) { in.LineItems[0].UnitPrice = MustMoney("-0.01") }},
		{"zero quantity", func(in *PricingInput) { in.LineItems[0].Quantity = decimal.Zero }},
		{"negative advance", func(in *PricingInput) { in.AdvancePaid = MustMoney("-100") }},
		{"inverted tier", func(in *PricingInput) {
			in.DiscountTiers = []DiscountTier{{ID: "bad", MinGuests: 300, MaxGuests: 300, DiscountPercentage: decimal.NewFromInt(5)}}
		}},
		{"rule with both values", func(in *PricingInput) {
			in.PricingRules = []PricingRule{{ID: "bad", Type: RuleTypeTax, Percentage: pct("5"), FixedAmount: MustMoney("10")}}
		}},
		{"rule with neither value", func(in *PricingInput) {
			in.PricingRules = []PricingRule{{ID: "bad", Type: RuleTypeTax}}
		}},
		{"rule with unknown type", func(in *PricingInput) {
			in.PricingRules = []PricingRule{{ID: "bad", Type: "rebate", Percentage: pct("5")}}
		}},
		{"missing event date for weekday rule", func(in *PricingInput) {
			in.EventDate = time.Time{}
			in.PricingRules = []PricingRule{{ID: "weekend", Type: RuleTypeSurcharge, Percentage: pct("5"), ApplicableDays: []time.Weekday{time.Saturday}}}
		}},
		{"missing event date for dated rule", func(in *PricingInput) {
			in.EventDate = time.Time{}
			in.PricingRules = []PricingRule{{ID: "promo", Type: RuleTypeDiscount, Percentage: pct("5"), ValidFrom: timePtr(eventDate)}}
		}},
		{"quantity below supported scale", func(in *PricingInput) {
			in.LineItems[0].Quantity = decimal.RequireFromString("1e-300000000")
		}},
		{"tier percentage below supported scale", func(in *PricingInput) {
			in.DiscountTiers[0].DiscountPercentage = decimal.RequireFromString("1e-300000000")
		}},
		{"rule percentage below supported scale", func(in *PricingInput) {
			in.PricingRules = []PricingRule{{ID: "tiny", Type: RuleTypeTax, Percentage: pct("1e-300000000")}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioInput()
			tt.mutate(in)

			b, err := engine.Calculate(in)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	t.Run("nil input", func(t *testing.T) {
		_, err := engine.Calculate(nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPricingEngine_Overflow(t *testing.T) {
	in := scenarioInput()
	in.HallBasePrice = MustMoney("999999999999999")

	b, err := NewPricingEngine().Calculate(in)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	var oErr *OverflowError
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, "subtotal_before_discount", oErr.Step)
}

func TestPricingEngine_HugeExponentOverflowsBeforeArithmetic(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name   string
		step   string
		mutate func(in *PricingInput)
	}{
		{"hall price", "hall_base_price", func(in *PricingInput) { in.HallBasePrice = MustMoney("1e300000000") }},
		{"unit price", "line_items.unit_price", func(in *PricingInput) { in.LineItems[0].UnitPrice = MustMoney("1e300000000") }},
		{"quantity", "line_items.quantity", func(in *PricingInput) { in.LineItems[0].Quantity = decimal.RequireFromString("1e300000000") }},
		{"advance", "advance_paid", func(in *PricingInput) { in.AdvancePaid = MustMoney("1e300000000") }},
		{"rule fixed amount", "pricing_rules.fixed_amount", func(in *PricingInput) {
			in.PricingRules = []PricingRule{{ID: "fee", Type: RuleTypePlatformFee, FixedAmount: MustMoney("1e300000000")}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioInput()
			tt.mutate(in)

			b, err := engine.Calculate(in)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrArithmeticOverflow)

			var oErr *OverflowError
			require.ErrorAs(t, err, &oErr)
			assert.Equal(t, tt.step, oErr.Step)
		})
	}
}

func TestPricingEngine_DateRulesUseUTCDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// Sunday 02:00 in IST is Saturday 20:30 UTC.
	in := scenarioInput()
	in.EventDate = time.Date(2026, 6, 14, 2, 0, 0, 0, ist)
	in.PricingRules = []PricingRule{
		{ID: "saturday", Type: RuleTypeSurcharge, FixedAmount: MustMoney("1000"), ApplicableDays: []time.Weekday{time.Saturday}, IsCumulative: true},
		{ID: "june-13-only", Type: RuleTypeSurcharge, FixedAmount: MustMoney("500"),
			ValidFrom:  timePtr(time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)),
			ValidUntil: timePtr(time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)), IsCumulative: true},
	}

	b, err := NewPricingEngine().Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, time.Saturday, in.EventDayOfWeek())
	assert.Equal(t, []string{"saturday", "june-13-only"}, b.AppliedRuleIDs)
	assert.Equal(t, "1500.00", b.SurchargeAmount.String())
}

func TestCalculatePackagePrice(t *testing.T) {
	total, err := CalculatePackagePrice(MustMoney("1249.99"), 150)
	require.NoError(t, err)
	assert.Equal(t, "187498.50", total.String())

	_, err = CalculatePackagePrice(MustMoney("1200"), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePackagePrice(MustMoney("-1"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePackagePrice(MustMoney("1e300000000"), 10)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}
