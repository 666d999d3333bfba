package m_booking_status

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the booking_statuses table.
type Data struct {
	BookingID      string           `spanner:"booking_id"`
	OrganizationID string           `spanner:"organization_id"`
	Status         string           `spanner:"status"`
	ConfirmedAt    spanner.NullTime `spanner:"confirmed_at"`
	Version        int64            `spanner:"version"`
	UpdatedAt      time.Time        `spanner:"updated_at"`
}
