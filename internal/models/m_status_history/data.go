package m_status_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Table name constant
const TableName = "booking_status_history"

// Field name constants for type-safe database access
const (
	BookingID = "booking_id"
	HistoryID = "history_id"
	OldStatus = "old_status"
	NewStatus = "new_status"
	ChangedBy = "changed_by"
	Reason    = "reason"
	ChangedAt = "changed_at"
)

// Data represents a status history record in the database.
type Data struct {
	BookingID string             `spanner:"booking_id"`
	HistoryID string             `spanner:"history_id"`
	OldStatus string             `spanner:"old_status"`
	NewStatus string             `spanner:"new_status"`
	ChangedBy string             `spanner:"changed_by"`
	Reason    spanner.NullString `spanner:"reason"`
	ChangedAt time.Time          `spanner:"changed_at"`
}

// Model provides type-safe database operations for status history.
type Model struct{}

// NewModel creates a new status history model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a status history record.
func (m *Model) InsertMut(data *Data) (*spanner.Mutation, error) {
	return spanner.InsertStruct(TableName, data)
}

// ReadColumns returns the column names for reading status history.
func (m *Model) ReadColumns() []string {
	return []string{
		BookingID,
		HistoryID,
		OldStatus,
		NewStatus,
		ChangedBy,
		Reason,
		ChangedAt,
	}
}
