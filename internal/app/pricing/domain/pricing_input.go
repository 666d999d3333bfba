package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one selected menu item or variant, or a package add-on.
// Optional items count toward the menu subtotal only once the customer confirmed them.
type LineItem struct {
	Ref        string
	Name       string
	UnitPrice  *Money
	Quantity   decimal.Decimal
	IsOptional bool
	Confirmed  bool
}

// Counts reports whether the item contributes to the menu subtotal.
func (li LineItem) Counts() bool {
	return !li.IsOptional || li.Confirmed
}

// Total returns unit price times quantity, unrounded.
func (li LineItem) Total() *Money {
	return li.UnitPrice.MultiplyByDecimal(li.Quantity)
}

// PricingInput is the fully resolved data for one calculation. The caller supplies a
// consistent snapshot of one organization's active tiers and rules.
type PricingInput struct {
	HallBasePrice         *Money
	GuestCount            int
	LineItems             []LineItem
	PackagePricePerPerson *Money
	EventDate             time.Time
	EventType             string
	DiscountTiers         []DiscountTier
	PricingRules          []PricingRule
	AdvancePaid           *Money
}

// EventDayOfWeek is derived from EventDate, taken in UTC.
func (in *PricingInput) EventDayOfWeek() time.Weekday {
	return dateOf(in.EventDate).Weekday()
}

// Validate rejects malformed input before any computation happens.
func (in *PricingInput) Validate() error {
	if in == nil {
		return invalid("input", "is required")
	}
	if in.GuestCount <= 0 {
		return invalid("guest_count", "must be positive, got %d", in.GuestCount)
	}
	if in.HallBasePrice == nil {
		return invalid("hall_base_price", "is required")
	}
	for _, b := range []struct {
		field string
		m     *Money
	}{
		{"hall_base_price", in.HallBasePrice},
		{"package_price_per_person", in.PackagePricePerPerson},
		{"advance_paid", in.AdvancePaid},
	} {
		if err := checkMoney(b.field, b.m); err != nil {
			return err
		}
	}
	if in.HallBasePrice.IsNegative() {
		return invalid("hall_base_price", "must not be negative")
	}
	if in.PackagePricePerPerson != nil && in.PackagePricePerPerson.IsNegative() {
		return invalid("package_price_per_person", "must not be negative")
	}
	if in.AdvancePaid != nil && in.AdvancePaid.IsNegative() {
		return invalid("advance_paid", "must not be negative")
	}
	for i, li := range in.LineItems {
		if err := checkMoney("line_items.unit_price", li.UnitPrice); err != nil {
			return err
		}
		if err := CheckBounds("line_items.quantity", li.Quantity); err != nil {
			return err
		}
		if li.UnitPrice == nil || li.UnitPrice.IsNegative() {
			return invalid("line_items", "item %d (%s) has a missing or negative unit price", i, li.Ref)
		}
		if !li.Quantity.IsPositive() {
			return invalid("line_items", "item %d (%s) has non-positive quantity %s", i, li.Ref, li.Quantity)
		}
	}
	for _, t := range in.DiscountTiers {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, r := range in.PricingRules {
		if err := r.Validate(); err != nil {
			return err
		}
		if in.EventDate.IsZero() && r.dependsOnDate() {
			return invalid("event_date", "is required by rule %q", r.ID)
		}
	}
	return nil
}

func (in *PricingInput) advancePaid() *Money {
	if in.AdvancePaid == nil {
		return Zero()
	}
	return in.AdvancePaid
}
