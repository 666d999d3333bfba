package recalculate_price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

type fakeConfigRepo struct {
	snapshot *contracts.RuleSnapshot
	err      error
}

func (f *fakeConfigRepo) LoadSnapshot(_ context.Context, orgID string) (*contracts.RuleSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeConfigRepo) UpsertRuleMut(string, domain.PricingRule, bool) (*spanner.Mutation, error) {
	return &spanner.Mutation{}, nil
}

func (f *fakeConfigRepo) UpsertTierMut(string, domain.DiscountTier, bool) (*spanner.Mutation, error) {
	return &spanner.Mutation{}, nil
}

type fakeCalcRepo struct {
	stored *contracts.PriceCalculation
}

func (f *fakeCalcRepo) UpsertMut(calc *contracts.PriceCalculation) (*spanner.Mutation, error) {
	f.stored = calc
	return &spanner.Mutation{}, nil
}

type fakeStatusRepo struct {
	rec      *contracts.BookingStatusRecord
	inserted *contracts.BookingStatusRecord
}

func (f *fakeStatusRepo) Get(context.Context, string) (*contracts.BookingStatusRecord, error) {
	if f.rec == nil {
		return nil, domain.ErrBookingNotFound
	}
	return f.rec, nil
}

func (f *fakeStatusRepo) InsertMut(rec *contracts.BookingStatusRecord) *spanner.Mutation {
	f.inserted = rec
	return &spanner.Mutation{}
}

func (f *fakeStatusRepo) TransitionMut(*contracts.BookingStatusRecord, *domain.StatusTransition) *spanner.Mutation {
	return &spanner.Mutation{}
}

func (f *fakeStatusRepo) HistoryInsertMut(string, string, domain.StatusHistoryEntry) (*spanner.Mutation, error) {
	return &spanner.Mutation{}, nil
}

func (f *fakeStatusRepo) VersionCheck(bookingID string, expected int64) committer.VersionCheck {
	return committer.VersionCheck{Table: "booking_statuses", Key: spanner.Key{bookingID}, Column: "version", Expected: expected}
}

type fakeOutboxRepo struct {
	events []*contracts.OutboxEvent
}

func (f *fakeOutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	f.events = append(f.events, event)
	return &spanner.Mutation{}
}

func (f *fakeOutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     "evt-1",
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "pending",
	}
}

type fakeCommitter struct {
	applied *committer.CommitPlan
	checked *committer.VersionCheck
	err     error
	// conflict makes every version-checked commit fail as if the row moved on.
	conflict bool
}

func (f *fakeCommitter) Apply(_ context.Context, plan *committer.CommitPlan) error {
	if f.err != nil {
		return f.err
	}
	f.applied = plan
	return nil
}

func (f *fakeCommitter) ApplyWithVersionCheck(ctx context.Context, check committer.VersionCheck, plan *committer.CommitPlan) error {
	f.checked = &check
	if f.conflict {
		return fmt.Errorf("%w: booking_statuses %v expected version %d", committer.ErrVersionConflict, check.Key, check.Expected)
	}
	return f.Apply(ctx, plan)
}

type fixture struct {
	config    *fakeConfigRepo
	calcs     *fakeCalcRepo
	statuses  *fakeStatusRepo
	outbox    *fakeOutboxRepo
	committer *fakeCommitter
	clock     *clock.MockClock
	sut       *Interactor
}

func newFixture() *fixture {
	f := &fixture{
		config: &fakeConfigRepo{snapshot: &contracts.RuleSnapshot{
			OrganizationID: "org-1",
			Tiers: []domain.DiscountTier{
				{ID: "tier-large", MinGuests: 151, MaxGuests: 300, DiscountPercentage: decimal.NewFromInt(10)},
			},
		}},
		calcs:     &fakeCalcRepo{},
		statuses:  &fakeStatusRepo{},
		outbox:    &fakeOutboxRepo{},
		committer: &fakeCommitter{},
		clock:     clock.NewMockClock(time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)),
	}
	f.sut = NewInteractor(f.config, f.calcs, f.statuses, f.outbox, f.committer, f.clock)
	return f
}

func validRequest() *Request {
	return &Request{
		BookingID: "bk-1",
		Pricing: contracts.PricingRequest{
			OrganizationID: "org-1",
			HallBasePrice:  domain.MustMoney("50000"),
			GuestCount:     200,
			LineItems: []domain.LineItem{
				{Ref: "biryani", UnitPrice: domain.MustMoney("850"), Quantity: decimal.NewFromInt(10)},
			},
			EventDate:   time.Date(2026, 6, 13, 18, 0, 0, 0, time.UTC),
			EventType:   "wedding",
			AdvancePaid: domain.MustMoney("20000"),
		},
	}
}

func TestExecute_NewBooking(t *testing.T) {
	f := newFixture()

	calc, err := f.sut.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "52650.00", calc.Breakdown.GrandTotal.String())
	assert.Equal(t, "32650.00", calc.Breakdown.BalanceDue.String())
	assert.Equal(t, f.clock.Now(), calc.CalculatedAt)
	assert.Equal(t, time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC), calc.EventDate)
	assert.NotEmpty(t, calc.CalculationID)
	assert.Same(t, calc, f.calcs.stored)

	require.NotNil(t, f.statuses.inserted)
	assert.Equal(t, domain.BookingStatusPending, f.statuses.inserted.Status)
	assert.Equal(t, "org-1", f.statuses.inserted.OrganizationID)

	require.Len(t, f.outbox.events, 1)
	evt := f.outbox.events[0]
	assert.Equal(t, "booking.price.calculated", evt.EventType)
	assert.Equal(t, "bk-1", evt.AggregateID)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(evt.Payload), &payload))
	assert.Equal(t, "52650.00", payload["grand_total"])
	assert.Equal(t, calc.CalculationID, payload["calculation_id"])

	require.NotNil(t, f.committer.applied)
	assert.Equal(t, 3, f.committer.applied.Count())
}

func TestExecute_ExistingBookingKeepsStatus(t *testing.T) {
	f := newFixture()
	f.statuses.rec = &contracts.BookingStatusRecord{BookingID: "bk-1", OrganizationID: "org-1", Status: domain.BookingStatusConfirmed, Version: 3}

	_, err := f.sut.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, f.statuses.inserted)
	assert.Equal(t, 2, f.committer.applied.Count())
	require.NotNil(t, f.committer.checked)
	assert.Equal(t, int64(3), f.committer.checked.Expected)
	assert.Equal(t, spanner.Key{"bk-1"}, f.committer.checked.Key)
}

func TestExecute_NewBookingCommitsWithoutVersionCheck(t *testing.T) {
	f := newFixture()

	_, err := f.sut.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, f.committer.checked)
}

func TestExecute_StatusChangedSinceRead(t *testing.T) {
	f := newFixture()
	f.statuses.rec = &contracts.BookingStatusRecord{BookingID: "bk-1", OrganizationID: "org-1", Status: domain.BookingStatusPending, Version: 1}
	f.committer.conflict = true

	calc, err := f.sut.Execute(context.Background(), validRequest())
	assert.Nil(t, calc)
	assert.ErrorIs(t, err, committer.ErrVersionConflict)
	assert.Nil(t, f.committer.applied)
	require.NotNil(t, f.committer.checked)
	assert.Equal(t, int64(1), f.committer.checked.Expected)
}

func TestExecute_ConcurrentFirstPricing(t *testing.T) {
	f := newFixture()
	f.committer.err = fmt.Errorf("%w: row [bk-1] in table booking_statuses already exists", committer.ErrVersionConflict)

	_, err := f.sut.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, committer.ErrVersionConflict)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "missing booking id",
			setup:   func(_ *fixture, req *Request) { req.BookingID = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing organization",
			setup:   func(_ *fixture, req *Request) { req.Pricing.OrganizationID = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "zero guests",
			setup:   func(_ *fixture, req *Request) { req.Pricing.GuestCount = 0 },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "cancelled booking",
			setup: func(f *fixture, _ *Request) {
				f.statuses.rec = &contracts.BookingStatusRecord{BookingID: "bk-1", OrganizationID: "org-1", Status: domain.BookingStatusCancelled}
			},
			wantErr: domain.ErrBookingClosed,
		},
		{
			name: "booking owned by another organization",
			setup: func(f *fixture, _ *Request) {
				f.statuses.rec = &contracts.BookingStatusRecord{BookingID: "bk-1", OrganizationID: "org-2", Status: domain.BookingStatusPending}
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "overflow",
			setup:   func(_ *fixture, req *Request) { req.Pricing.HallBasePrice = domain.MustMoney("999999999999999") },
			wantErr: domain.ErrArithmeticOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.setup(f, req)

			_, err := f.sut.Execute(context.Background(), req)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Nil(t, f.committer.applied)
			assert.Empty(t, f.outbox.events)
		})
	}
}

func TestExecute_PropagatesStoreErrors(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		f := newFixture()
		f.config.err = errors.New("spanner unavailable")

		_, err := f.sut.Execute(context.Background(), validRequest())
		assert.ErrorContains(t, err, "spanner unavailable")
	})

	t.Run("commit", func(t *testing.T) {
		f := newFixture()
		f.committer.err = errors.New("aborted")

		_, err := f.sut.Execute(context.Background(), validRequest())
		assert.ErrorContains(t, err, "failed to commit transaction")
	})
}
