package suggest_menu

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// Query builds a menu suggestion for a target budget.
type Query struct{}

// NewQuery creates a new suggest menu query.
func NewQuery() *Query {
	return &Query{}
}

// Execute runs the greedy budget suggestion over the supplied items.
func (q *Query) Execute(ctx context.Context, req *domain.BudgetRequest) (*domain.BudgetSuggestion, error) {
	_, span := otel.Tracer("marquee-pricing").Start(ctx, "suggest_menu")
	defer span.End()

	span.SetAttributes(
		attribute.Int("guest_count", req.GuestCount),
		attribute.Int("candidate_items", len(req.Items)),
	)
	return domain.SuggestMenuForBudget(*req)
}
