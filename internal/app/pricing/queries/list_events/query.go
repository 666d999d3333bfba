package list_events

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   *string // e.g. "booking.price.calculated"
	AggregateID *string // booking ID
	Status      *string
	Limit       int
}

// EventsReadModel defines the interface for reading events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a list of events with filtering. The returned count is the number of
// matching events, independent of the limit.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error) {
	ctx, span := otel.Tracer("marquee-pricing").Start(ctx, "list_events")
	defer span.End()

	if req.Status != nil && !m_outbox.IsValidStatus(*req.Status) {
		return nil, 0, fmt.Errorf("%w: unknown event status %q", domain.ErrInvalidInput, *req.Status)
	}

	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	span.SetAttributes(attribute.Int("limit", req.Limit))

	return q.readModel.ListEvents(ctx, req)
}
