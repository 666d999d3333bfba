package recalculate_price

import (
	"context"
	"encoding/json"
	"errors"
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

// Request contains the data needed to price a booking and store the result.
type Request struct {
	BookingID string
	Pricing   contracts.PricingRequest
}

// Interactor handles the recalculate price use case.
type Interactor struct {
	configRepo contracts.PricingConfigRepository
	calcRepo   contracts.PriceCalculationRepository
	statusRepo contracts.BookingStatusRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	engine     *domain.PricingEngine
	clock      clock.Clock
}

// NewInteractor creates a new recalculate price interactor.
func NewInteractor(
	configRepo contracts.PricingConfigRepository,
	calcRepo contracts.PriceCalculationRepository,
	statusRepo contracts.BookingStatusRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		configRepo: configRepo,
		calcRepo:   calcRepo,
		statusRepo: statusRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
		engine:     domain.NewPricingEngine(),
		clock:      clock,
	}
}

// Execute prices the booking against the organization's current rules and replaces its
// stored calculation. The calculation, a pending status row for a booking seen for the
// first time and the booking.price.calculated event commit together. A status change
// or a first pricing racing this call fails it with committer.ErrVersionConflict.
func (i *Interactor) Execute(ctx context.Context, req *Request) (result *contracts.PriceCalculation, err error) {
	ctx, span := otel.Tracer("marquee-pricing").Start(ctx, "recalculate_price")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("booking.id", req.BookingID),
		attribute.String("organization.id", req.Pricing.OrganizationID),
	)

	// 2. Load booking status; a closed booking keeps its last price
	status, err := i.statusRepo.Get(ctx, req.BookingID)
	if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, err
	}
	if status != nil {
		if status.OrganizationID != req.Pricing.OrganizationID {
			return nil, &domain.ValidationError{Field: "organization_id", Reason: "does not own the booking"}
		}
		if status.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: booking %s is %s", domain.ErrBookingClosed, req.BookingID, status.Status)
		}
	}

	// 3. Load configuration snapshot
	snapshot, err := i.configRepo.LoadSnapshot(ctx, req.Pricing.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing configuration: %w", err)
	}

	// 4. Calculate
	input, err := req.Pricing.ToInput(snapshot)
	if err != nil {
		return nil, err
	}
	breakdown, err := i.engine.Calculate(input)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	calc := &contracts.PriceCalculation{
		CalculationID:  uuid.New().String(),
		BookingID:      req.BookingID,
		OrganizationID: req.Pricing.OrganizationID,
		GuestCount:     req.Pricing.GuestCount,
		EventDate:      clock.StartOfDay(req.Pricing.EventDate),
		EventType:      req.Pricing.EventType,
		Breakdown:      breakdown,
		CalculatedAt:   now,
	}

	// 5. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.calcRepo.UpsertMut(calc)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	// 6. Register the booking on first pricing
	if status == nil {
		plan.Add(i.statusRepo.InsertMut(&contracts.BookingStatusRecord{
			BookingID:      req.BookingID,
			OrganizationID: req.Pricing.OrganizationID,
			Status:         domain.BookingStatusPending,
		}))
	}

	// 7. Add outbox event
	event := &domain.PriceCalculatedEvent{
		BookingID:      req.BookingID,
		OrganizationID: req.Pricing.OrganizationID,
		CalculationID:  calc.CalculationID,
		GrandTotal:     breakdown.GrandTotal.String(),
		BalanceDue:     breakdown.BalanceDue.String(),
		AppliedRuleIDs: breakdown.AppliedRuleIDs,
		CalculatedAt:   now,
	}
	payload, err := i.serializeEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))

	// 8. Apply plan, guarded on the status version read in step 2 so a concurrent
	// cancellation is not overwritten by a price
	if status == nil {
		err = i.committer.Apply(ctx, plan)
	} else {
		err = i.committer.ApplyWithVersionCheck(ctx, i.statusRepo.VersionCheck(req.BookingID, status.Version), plan)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return calc, nil
}

// validate validates the request. Pricing input itself is validated by the engine.
func (i *Interactor) validate(req *Request) error {
	if req.BookingID == "" {
		return &domain.ValidationError{Field: "booking_id", Reason: "is required"}
	}
	if req.Pricing.OrganizationID == "" {
		return &domain.ValidationError{Field: "organization_id", Reason: "is required"}
	}
	return nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
