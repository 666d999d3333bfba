package m_booking_status

// Field name constants for the booking_statuses table.
const (
	TableName = "booking_statuses"

	BookingID      = "booking_id"
	OrganizationID = "organization_id"
	Status         = "status"
	ConfirmedAt    = "confirmed_at"
	Version        = "version"
	UpdatedAt      = "updated_at"
)
