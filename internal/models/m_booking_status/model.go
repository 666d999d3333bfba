package m_booking_status

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the booking_statuses table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ReadColumns returns the columns Data is scanned from.
func (m *Model) ReadColumns() []string {
	return []string{BookingID, OrganizationID, Status, ConfirmedAt, Version, UpdatedAt}
}

// InsertMut creates a mutation registering a booking's first status.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{BookingID, OrganizationID, Status, ConfirmedAt, Version, UpdatedAt},
		[]interface{}{data.BookingID, data.OrganizationID, data.Status, data.ConfirmedAt, data.Version, spanner.CommitTimestamp},
	)
}

// UpdateMut creates a mutation for updating specific status fields.
// updated_at is always refreshed.
func (m *Model) UpdateMut(bookingID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+2)
	values := make([]interface{}, 0, len(updates)+2)

	columns = append(columns, BookingID, UpdatedAt)
	values = append(values, bookingID, spanner.CommitTimestamp)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
