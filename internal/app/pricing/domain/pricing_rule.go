package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleType classifies a pricing rule and decides which pass applies it.
type RuleType string

const (
	RuleTypeDiscount      RuleType = "discount"
	RuleTypeSurcharge     RuleType = "surcharge"
	RuleTypeServiceCharge RuleType = "service_charge"
	RuleTypeTax           RuleType = "tax"
	RuleTypePlatformFee   RuleType = "platform_fee"
)

// IsValid reports whether t is one of the known rule types.
func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeDiscount, RuleTypeSurcharge, RuleTypeServiceCharge, RuleTypeTax, RuleTypePlatformFee:
		return true
	}
	return false
}

// PricingRule is a conditional adjustment matched against booking attributes.
// Exactly one of Percentage or FixedAmount is set. Nil bounds and empty sets are unbounded.
type PricingRule struct {
	ID   string
	Name string
	Type RuleType

	Percentage  *decimal.Decimal
	FixedAmount *Money

	MinGuests *int
	MaxGuests *int
	MinAmount *Money
	MaxAmount *Money

	ApplicableEventTypes []string
	ApplicableDays       []time.Weekday
	ValidFrom            *time.Time
	ValidUntil           *time.Time

	Priority     int
	IsCumulative bool
}

// Validate checks the rule shape. Conditions that can never match (e.g. min > max) are
// not errors; such a rule simply never fires.
func (r PricingRule) Validate() error {
	if !r.Type.IsValid() {
		return invalid("pricing_rules", "rule %q has unknown type %q", r.ID, r.Type)
	}
	if r.Percentage != nil {
		if err := CheckBounds("pricing_rules.percentage", *r.Percentage); err != nil {
			return err
		}
	}
	for _, b := range []struct {
		field string
		m     *Money
	}{
		{"pricing_rules.fixed_amount", r.FixedAmount},
		{"pricing_rules.min_amount", r.MinAmount},
		{"pricing_rules.max_amount", r.MaxAmount},
	} {
		if err := checkMoney(b.field, b.m); err != nil {
			return err
		}
	}
	switch {
	case r.Percentage != nil && r.FixedAmount != nil:
		return invalid("pricing_rules", "rule %q sets both percentage and fixed_amount", r.ID)
	case r.Percentage == nil && r.FixedAmount == nil:
		return invalid("pricing_rules", "rule %q sets neither percentage nor fixed_amount", r.ID)
	case r.Percentage != nil && r.Percentage.IsNegative():
		return invalid("pricing_rules", "rule %q has negative percentage", r.ID)
	case r.FixedAmount != nil && r.FixedAmount.IsNegative():
		return invalid("pricing_rules", "rule %q has negative fixed_amount", r.ID)
	}
	return nil
}

// dependsOnDate reports whether the rule has a validity window or a weekday condition.
func (r PricingRule) dependsOnDate() bool {
	return r.ValidFrom != nil || r.ValidUntil != nil || len(r.ApplicableDays) > 0
}

// matchContext carries the booking attributes rules are matched against.
type matchContext struct {
	eventDate  time.Time
	eventType  string
	guestCount int
	subtotal   *Money
}

// matches reports whether every condition of the rule holds for the booking.
func (r PricingRule) matches(mc matchContext) bool {
	day := dateOf(mc.eventDate)
	if r.ValidFrom != nil && day.Before(dateOf(*r.ValidFrom)) {
		return false
	}
	if r.ValidUntil != nil && day.After(dateOf(*r.ValidUntil)) {
		return false
	}
	if len(r.ApplicableDays) > 0 && !containsWeekday(r.ApplicableDays, day.Weekday()) {
		return false
	}
	if len(r.ApplicableEventTypes) > 0 && !containsString(r.ApplicableEventTypes, mc.eventType) {
		return false
	}
	if r.MinGuests != nil && mc.guestCount < *r.MinGuests {
		return false
	}
	if r.MaxGuests != nil && mc.guestCount > *r.MaxGuests {
		return false
	}
	if r.MinAmount != nil && mc.subtotal.LessThan(r.MinAmount) {
		return false
	}
	if r.MaxAmount != nil && mc.subtotal.GreaterThan(r.MaxAmount) {
		return false
	}
	return true
}

// amountOn returns the rounded contribution of the rule given the running total of its pass.
func (r PricingRule) amountOn(base *Money) *Money {
	if r.FixedAmount != nil {
		return r.FixedAmount.Round()
	}
	return base.Percent(*r.Percentage).Round()
}

// dateOf truncates t to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func containsWeekday(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
