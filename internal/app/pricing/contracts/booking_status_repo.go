package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// BookingStatusRecord is the persisted status of a booking.
type BookingStatusRecord struct {
	BookingID      string
	OrganizationID string
	Status         domain.BookingStatus
	ConfirmedAt    *time.Time
	Version        int64
}

// BookingStatusRepository defines the interface for booking status persistence.
type BookingStatusRepository interface {
	// Get returns domain.ErrBookingNotFound when the booking has no status yet.
	Get(ctx context.Context, bookingID string) (*BookingStatusRecord, error)

	// InsertMut registers a new booking at version 1.
	InsertMut(rec *BookingStatusRecord) *spanner.Mutation

	// TransitionMut writes the new status and bumps the version of rec.
	TransitionMut(rec *BookingStatusRecord, t *domain.StatusTransition) *spanner.Mutation

	// HistoryInsertMut appends a status history row.
	HistoryInsertMut(bookingID, historyID string, entry domain.StatusHistoryEntry) (*spanner.Mutation, error)

	// VersionCheck guards a commit on the booking still being at version expected.
	VersionCheck(bookingID string, expected int64) committer.VersionCheck
}
