package get_price_calculation

import (
	"context"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// Request contains the booking whose stored calculation is wanted.
type Request struct {
	BookingID string
}

// Query handles the get price calculation query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get price calculation query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the latest stored calculation of a booking.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PriceCalculation, error) {
	if req.BookingID == "" {
		return nil, &domain.ValidationError{Field: "booking_id", Reason: "is required"}
	}
	return q.readModel.GetPriceCalculation(ctx, req.BookingID)
}
