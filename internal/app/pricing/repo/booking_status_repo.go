package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_booking_status"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_status_history"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// BookingStatusRepo implements BookingStatusRepository for Spanner.
type BookingStatusRepo struct {
	client       *spanner.Client
	model        *m_booking_status.Model
	historyModel *m_status_history.Model
}

// NewBookingStatusRepo creates a new BookingStatusRepo.
func NewBookingStatusRepo(client *spanner.Client) contracts.BookingStatusRepository {
	return &BookingStatusRepo{
		client:       client,
		model:        m_booking_status.NewModel(),
		historyModel: m_status_history.NewModel(),
	}
}

// Get reads the current status of a booking.
func (r *BookingStatusRepo) Get(ctx context.Context, bookingID string) (*contracts.BookingStatusRecord, error) {
	row, err := r.client.Single().ReadRow(ctx, m_booking_status.TableName, spanner.Key{bookingID}, r.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to read booking status: %w", err)
	}

	var data m_booking_status.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse booking status: %w", err)
	}

	status, err := domain.ParseBookingStatus(data.Status)
	if err != nil {
		return nil, err
	}

	rec := &contracts.BookingStatusRecord{
		BookingID:      data.BookingID,
		OrganizationID: data.OrganizationID,
		Status:         status,
		Version:        data.Version,
	}
	if data.ConfirmedAt.Valid {
		t := data.ConfirmedAt.Time
		rec.ConfirmedAt = &t
	}
	return rec, nil
}

// InsertMut registers a new booking at version 1.
func (r *BookingStatusRepo) InsertMut(rec *contracts.BookingStatusRecord) *spanner.Mutation {
	data := &m_booking_status.Data{
		BookingID:      rec.BookingID,
		OrganizationID: rec.OrganizationID,
		Status:         string(rec.Status),
		Version:        1,
	}
	if rec.ConfirmedAt != nil {
		data.ConfirmedAt = spanner.NullTime{Time: *rec.ConfirmedAt, Valid: true}
	}
	return r.model.InsertMut(data)
}

// TransitionMut writes the new status and the next version.
func (r *BookingStatusRepo) TransitionMut(rec *contracts.BookingStatusRecord, t *domain.StatusTransition) *spanner.Mutation {
	updates := map[string]interface{}{
		m_booking_status.Status:  string(t.NewStatus),
		m_booking_status.Version: rec.Version + 1,
	}
	if t.ConfirmedAt != nil {
		updates[m_booking_status.ConfirmedAt] = *t.ConfirmedAt
	}
	return r.model.UpdateMut(rec.BookingID, updates)
}

// HistoryInsertMut appends a status history row.
func (r *BookingStatusRepo) HistoryInsertMut(bookingID, historyID string, entry domain.StatusHistoryEntry) (*spanner.Mutation, error) {
	mut, err := r.historyModel.InsertMut(&m_status_history.Data{
		BookingID: bookingID,
		HistoryID: historyID,
		OldStatus: string(entry.OldStatus),
		NewStatus: string(entry.NewStatus),
		ChangedBy: entry.ChangedBy,
		Reason:    nullString(entry.Reason),
		ChangedAt: entry.ChangedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build status history mutation: %w", err)
	}
	return mut, nil
}

// VersionCheck guards a commit on the version column of the booking row.
func (r *BookingStatusRepo) VersionCheck(bookingID string, expected int64) committer.VersionCheck {
	return committer.VersionCheck{
		Table:    m_booking_status.TableName,
		Key:      spanner.Key{bookingID},
		Column:   m_booking_status.Version,
		Expected: expected,
	}
}
