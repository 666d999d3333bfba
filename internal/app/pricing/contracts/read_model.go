package contracts

import (
	"context"
)

// ReadModel defines the query side for stored calculations.
type ReadModel interface {
	// GetPriceCalculation returns domain.ErrCalculationNotFound when the booking was
	// never priced.
	GetPriceCalculation(ctx context.Context, bookingID string) (*PriceCalculation, error)
}
