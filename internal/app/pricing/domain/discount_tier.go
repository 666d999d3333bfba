package domain

import (
	"github.com/shopspring/decimal"
)

// DiscountTier is a guest-count range (inclusive on both ends) with a percentage discount
// on the pre-discount subtotal.
type DiscountTier struct {
	ID                 string
	Name               string
	MinGuests          int
	MaxGuests          int
	DiscountPercentage decimal.Decimal
}

// Validate checks the tier bounds and percentage.
func (t DiscountTier) Validate() error {
	if t.MaxGuests <= t.MinGuests {
		return invalid("discount_tiers", "tier %q has max_guests %d <= min_guests %d", t.ID, t.MaxGuests, t.MinGuests)
	}
	if err := CheckBounds("discount_tiers.discount_percentage", t.DiscountPercentage); err != nil {
		return err
	}
	if t.DiscountPercentage.IsNegative() || t.DiscountPercentage.GreaterThan(hundred) {
		return invalid("discount_tiers", "tier %q discount percentage %s outside 0-100", t.ID, t.DiscountPercentage)
	}
	return nil
}

// Matches reports whether guestCount falls inside the tier range.
func (t DiscountTier) Matches(guestCount int) bool {
	return t.MinGuests <= guestCount && guestCount <= t.MaxGuests
}

// DiscountAmount returns the rounded discount this tier grants on subtotal.
func (t DiscountTier) DiscountAmount(subtotal *Money) *Money {
	return subtotal.Percent(t.DiscountPercentage).Round()
}

// ResolveApplicableTier selects the tier whose range contains guestCount.
// Overlapping tiers are tolerated: the largest discount percentage wins, and among equal
// percentages the earliest declared tier wins. Returns nil when nothing matches.
func ResolveApplicableTier(tiers []DiscountTier, guestCount int) *DiscountTier {
	var best *DiscountTier
	for i := range tiers {
		t := &tiers[i]
		if !t.Matches(guestCount) {
			continue
		}
		if best == nil || t.DiscountPercentage.GreaterThan(best.DiscountPercentage) {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	resolved := *best
	return &resolved
}
