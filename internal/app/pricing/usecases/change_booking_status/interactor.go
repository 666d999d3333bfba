package change_booking_status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// Request contains the data needed to move a booking to a new status.
type Request struct {
	BookingID    string
	TargetStatus string
	ChangedBy    string
	Reason       string // Optional
	// ExpectedVersion, when set, must match the stored version or the change is
	// rejected with committer.ErrVersionConflict.
	ExpectedVersion *int64
}

// Interactor handles the change booking status use case.
type Interactor struct {
	statusRepo contracts.BookingStatusRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new change booking status interactor.
func NewInteractor(
	statusRepo contracts.BookingStatusRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		statusRepo: statusRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute applies the transition and returns the updated record.
func (i *Interactor) Execute(ctx context.Context, req *Request) (result *contracts.BookingStatusRecord, err error) {
	ctx, span := otel.Tracer("marquee-pricing").Start(ctx, "change_booking_status")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	// 1. Validate request
	if req.BookingID == "" {
		return nil, &domain.ValidationError{Field: "booking_id", Reason: "is required"}
	}
	target, err := domain.ParseBookingStatus(req.TargetStatus)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("booking.id", req.BookingID),
		attribute.String("booking.target_status", string(target)),
	)

	// 2. Load aggregate
	rec, err := i.statusRepo.Get(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	expected := rec.Version
	if req.ExpectedVersion != nil {
		if *req.ExpectedVersion != rec.Version {
			return nil, fmt.Errorf("%w: booking %s expected version %d, found %d",
				committer.ErrVersionConflict, req.BookingID, *req.ExpectedVersion, rec.Version)
		}
		expected = *req.ExpectedVersion
	}

	// 3. Call domain function
	now := i.clock.Now()
	transition, err := domain.TransitionBookingStatus(rec.Status, target, req.ChangedBy, req.Reason, now)
	if err != nil {
		return nil, err
	}

	// 4. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.statusRepo.TransitionMut(rec, transition))

	// 5. Add history record
	historyMut, err := i.statusRepo.HistoryInsertMut(req.BookingID, uuid.New().String(), transition.History)
	if err != nil {
		return nil, err
	}
	plan.Add(historyMut)

	// 6. Add outbox event
	event := &domain.BookingStatusChangedEvent{
		BookingID: req.BookingID,
		OldStatus: string(transition.History.OldStatus),
		NewStatus: string(transition.NewStatus),
		ChangedBy: transition.History.ChangedBy,
		Reason:    transition.History.Reason,
		ChangedAt: now,
	}
	payload, err := i.serializeEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))

	// 7. Apply plan guarded by the version read in step 2
	if err := i.committer.ApplyWithVersionCheck(ctx, i.statusRepo.VersionCheck(req.BookingID, expected), plan); err != nil {
		return nil, err
	}

	updated := &contracts.BookingStatusRecord{
		BookingID:      rec.BookingID,
		OrganizationID: rec.OrganizationID,
		Status:         transition.NewStatus,
		ConfirmedAt:    rec.ConfirmedAt,
		Version:        expected + 1,
	}
	if transition.ConfirmedAt != nil {
		updated.ConfirmedAt = transition.ConfirmedAt
	}
	return updated, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
