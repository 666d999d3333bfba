package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/query"
)

// EventsReadModel implements the list_events.EventsReadModel interface for Spanner.
type EventsReadModel struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// eventsQuery builds the filtered, unordered query shared by the page and the count.
func eventsQuery(req *list_events.Request) *query.Builder {
	b := query.From(m_outbox.TableName)
	if req.EventType != nil {
		b = b.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		b = b.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		b = b.Where(query.Eq(m_outbox.Status, *req.Status))
	}
	return b
}

// ListEvents retrieves the newest matching events and the total number of matches. Both
// reads share one snapshot.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	base := eventsQuery(req)
	stmt := base.Select(r.model.ReadColumns()...).
		OrderBy(m_outbox.CreatedAt, query.Desc).
		ThenBy(m_outbox.EventID, query.Asc).
		Limit(int64(req.Limit)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	total, err := countRows(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func countRows(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	var total int64
	if err := row.Column(0, &total); err != nil {
		return 0, fmt.Errorf("failed to scan event count: %w", err)
	}
	return total, nil
}
