package contracts

import (
	"time"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// PricingRequest is the booking data a caller prices against an organization's
// stored configuration. Package, when set, is expanded for GuestCount guests.
type PricingRequest struct {
	OrganizationID string
	HallBasePrice  *domain.Money
	GuestCount     int
	LineItems      []domain.LineItem
	Package        *domain.MenuPackage
	EventDate      time.Time
	EventType      string
	AdvancePaid    *domain.Money
}

// ToInput combines the request with a configuration snapshot into engine input.
func (r *PricingRequest) ToInput(snapshot *RuleSnapshot) (*domain.PricingInput, error) {
	input := &domain.PricingInput{
		HallBasePrice: r.HallBasePrice,
		GuestCount:    r.GuestCount,
		LineItems:     append([]domain.LineItem(nil), r.LineItems...),
		EventDate:     r.EventDate,
		EventType:     r.EventType,
		AdvancePaid:   r.AdvancePaid,
	}
	if snapshot != nil {
		input.DiscountTiers = snapshot.Tiers
		input.PricingRules = snapshot.Rules
	}

	if r.Package != nil {
		exp, err := r.Package.Expand(r.GuestCount)
		if err != nil {
			return nil, err
		}
		input.PackagePricePerPerson = exp.PricePerPerson
		input.LineItems = append(input.LineItems, exp.LineItems...)
	}
	return input, nil
}
