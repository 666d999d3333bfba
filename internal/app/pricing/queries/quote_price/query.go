package quote_price

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// Request contains the booking data to quote.
type Request struct {
	Pricing contracts.PricingRequest
}

// Query prices a prospective booking without storing anything.
type Query struct {
	configRepo contracts.PricingConfigRepository
	engine     *domain.PricingEngine
}

// NewQuery creates a new quote price query.
func NewQuery(configRepo contracts.PricingConfigRepository) *Query {
	return &Query{
		configRepo: configRepo,
		engine:     domain.NewPricingEngine(),
	}
}

// Execute calculates a breakdown against the organization's active rules and tiers.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.PricingBreakdown, error) {
	ctx, span := otel.Tracer("marquee-pricing").Start(ctx, "quote_price")
	defer span.End()

	if req.Pricing.OrganizationID == "" {
		return nil, &domain.ValidationError{Field: "organization_id", Reason: "is required"}
	}
	span.SetAttributes(attribute.String("organization.id", req.Pricing.OrganizationID))

	snapshot, err := q.configRepo.LoadSnapshot(ctx, req.Pricing.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing configuration: %w", err)
	}

	input, err := req.Pricing.ToInput(snapshot)
	if err != nil {
		return nil, err
	}
	return q.engine.Calculate(input)
}
