package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// PriceCalculation is a breakdown stored against a booking.
type PriceCalculation struct {
	CalculationID  string
	BookingID      string
	OrganizationID string
	GuestCount     int
	EventDate      time.Time
	EventType      string
	Breakdown      *domain.PricingBreakdown
	CalculatedAt   time.Time
}

// PriceCalculationRepository defines the write side of stored calculations.
// Repositories return mutations, they don't apply them.
type PriceCalculationRepository interface {
	// UpsertMut replaces the stored calculation for the booking.
	// Returns an error if an amount does not fit the NUMERIC columns.
	UpsertMut(calc *PriceCalculation) (*spanner.Mutation, error)
}
