package list_events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
)

type fakeReadModel struct {
	got    *Request
	events []*m_outbox.Data
}

func (f *fakeReadModel) ListEvents(_ context.Context, req *Request) ([]*m_outbox.Data, int64, error) {
	f.got = req
	return f.events, int64(len(f.events)), nil
}

func TestExecute_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default when unset", 0, DefaultLimit},
		{"default when negative", -5, DefaultLimit},
		{"kept when in range", 25, 25},
		{"capped at max", 5000, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &fakeReadModel{}
			_, _, err := NewQuery(rm).Execute(context.Background(), &Request{Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rm.got.Limit)
		})
	}
}

func TestExecute_PassesFilters(t *testing.T) {
	eventType := "booking.status.changed"
	bookingID := "bk-1"
	rm := &fakeReadModel{events: []*m_outbox.Data{{EventID: "e1", EventType: eventType, AggregateID: bookingID}}}

	events, total, err := NewQuery(rm).Execute(context.Background(), &Request{EventType: &eventType, AggregateID: &bookingID})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, &eventType, rm.got.EventType)
	assert.Equal(t, &bookingID, rm.got.AggregateID)
}

func TestExecute_RejectsUnknownStatus(t *testing.T) {
	status := "processed"
	rm := &fakeReadModel{}

	_, _, err := NewQuery(rm).Execute(context.Background(), &Request{Status: &status})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Nil(t, rm.got)
}
