package package_price

import (
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// Request contains a package price and a head count.
type Request struct {
	PricePerPerson *domain.Money
	GuestCount     int
}

// Query computes the total price of a per-person package.
type Query struct{}

// NewQuery creates a new package price query.
func NewQuery() *Query {
	return &Query{}
}

// Execute returns price_per_person * guest_count.
func (q *Query) Execute(req *Request) (*domain.Money, error) {
	return domain.CalculatePackagePrice(req.PricePerPerson, req.GuestCount)
}
