//go:build integration

package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_outbox"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// These tests run against the Spanner emulator with migrations applied:
//
//	SPANNER_EMULATOR_HOST=localhost:9010 go test -tags integration ./internal/app/pricing/repo/...

func testDatabase() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/marquee-pricing-test"
}

func setupSpanner(t *testing.T) *spanner.Client {
	t.Helper()

	client, err := spanner.NewClient(context.Background(), testDatabase())
	require.NoError(t, err, "failed to create Spanner client")

	cleanDatabase(t, client)
	t.Cleanup(func() {
		cleanDatabase(t, client)
		client.Close()
	})
	return client
}

func cleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	tables := []string{
		"outbox_events",
		"booking_status_history",
		"booking_statuses",
		"price_calculations",
		"discount_tiers",
		"pricing_rules",
	}
	muts := make([]*spanner.Mutation, 0, len(tables))
	for _, table := range tables {
		muts = append(muts, spanner.Delete(table, spanner.AllKeys()))
	}
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to clean database")
}

func assertRowCount(t *testing.T, client *spanner.Client, table string, expected int64) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table)})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count))
	require.Equal(t, expected, count, "unexpected row count in table %s", table)
}

func TestPricingConfigRepo_LoadSnapshot(t *testing.T) {
	client := setupSpanner(t)
	ctx := context.Background()
	repository := NewPricingConfigRepo(client)
	comm := committer.NewCommitter(client)

	gst := decimal.NewFromInt(18)
	weekend := decimal.NewFromInt(15)
	rules := []domain.PricingRule{
		{ID: "gst", Name: "GST", Type: domain.RuleTypeTax, Percentage: &gst, Priority: 10, IsCumulative: true},
		{ID: "weekend", Name: "Weekend", Type: domain.RuleTypeSurcharge, Percentage: &weekend, Priority: 50,
			ApplicableDays: []time.Weekday{time.Saturday, time.Sunday}},
	}

	plan := committer.NewPlan()
	for _, r := range rules {
		mut, err := repository.UpsertRuleMut("org-1", r, true)
		require.NoError(t, err)
		plan.Add(mut)
	}
	inactive, err := repository.UpsertRuleMut("org-1", domain.PricingRule{ID: "old", Type: domain.RuleTypeTax, FixedAmount: domain.MustMoney("5")}, false)
	require.NoError(t, err)
	plan.Add(inactive)
	other, err := repository.UpsertRuleMut("org-2", rules[0], true)
	require.NoError(t, err)
	plan.Add(other)

	tier, err := repository.UpsertTierMut("org-1", domain.DiscountTier{ID: "big", Name: "Big", MinGuests: 100, MaxGuests: 500, DiscountPercentage: decimal.NewFromInt(5)}, true)
	require.NoError(t, err)
	plan.Add(tier)
	require.NoError(t, comm.Apply(ctx, plan))

	snapshot, err := repository.LoadSnapshot(ctx, "org-1")
	require.NoError(t, err)

	require.Len(t, snapshot.Rules, 2)
	assert.Equal(t, "weekend", snapshot.Rules[0].ID, "higher priority first")
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, snapshot.Rules[0].ApplicableDays)
	assert.True(t, snapshot.Rules[1].Percentage.Equal(gst))
	require.Len(t, snapshot.Tiers, 1)
	assert.True(t, snapshot.Tiers[0].DiscountPercentage.Equal(decimal.NewFromInt(5)))
	assert.False(t, snapshot.ReadAt.IsZero())
}

func TestPriceCalculationRepo_UpsertAndRead(t *testing.T) {
	client := setupSpanner(t)
	ctx := context.Background()
	comm := committer.NewCommitter(client)

	calc := &contracts.PriceCalculation{
		CalculationID:  uuid.New().String(),
		BookingID:      "bk-1",
		OrganizationID: "org-1",
		GuestCount:     200,
		EventDate:      time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		EventType:      "wedding",
		Breakdown:      breakdownFixture(t),
		CalculatedAt:   time.Now().UTC(),
	}
	mut, err := NewPriceCalculationRepo(client).UpsertMut(calc)
	require.NoError(t, err)

	plan := committer.NewPlan()
	plan.Add(mut)
	require.NoError(t, comm.Apply(ctx, plan))

	stored, err := NewReadModel(client).GetPriceCalculation(ctx, calc.BookingID)
	require.NoError(t, err)
	assert.Equal(t, calc.CalculationID, stored.CalculationID)
	assert.Equal(t, calc.Breakdown.GrandTotal.String(), stored.Breakdown.GrandTotal.String())
	assert.Equal(t, calc.Breakdown.AppliedRuleIDs, stored.Breakdown.AppliedRuleIDs)
	assert.Len(t, stored.Breakdown.Adjustments, len(calc.Breakdown.Adjustments))

	_, err = NewReadModel(client).GetPriceCalculation(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
}

func TestBookingStatusRepo_VersionedTransition(t *testing.T) {
	client := setupSpanner(t)
	ctx := context.Background()
	repository := NewBookingStatusRepo(client)
	comm := committer.NewCommitter(client)

	_, err := repository.Get(ctx, "bk-1")
	require.ErrorIs(t, err, domain.ErrBookingNotFound)

	plan := committer.NewPlan()
	plan.Add(repository.InsertMut(&contracts.BookingStatusRecord{BookingID: "bk-1", OrganizationID: "org-1", Status: domain.BookingStatusPending}))
	require.NoError(t, comm.Apply(ctx, plan))

	rec, err := repository.Get(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)

	now := time.Now().UTC()
	transition, err := domain.Confirm(rec.Status, "manager", now)
	require.NoError(t, err)

	plan = committer.NewPlan()
	plan.Add(repository.TransitionMut(rec, transition))
	history, err := repository.HistoryInsertMut(rec.BookingID, uuid.New().String(), transition.History)
	require.NoError(t, err)
	plan.Add(history)
	require.NoError(t, comm.ApplyWithVersionCheck(ctx, repository.VersionCheck("bk-1", 1), plan))

	rec, err = repository.Get(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, rec.Status)
	assert.Equal(t, int64(2), rec.Version)
	require.NotNil(t, rec.ConfirmedAt)
	assertRowCount(t, client, "booking_status_history", 1)

	// Replaying against the old version must not write
	err = comm.ApplyWithVersionCheck(ctx, repository.VersionCheck("bk-1", 1), plan)
	assert.ErrorIs(t, err, committer.ErrVersionConflict)
	assertRowCount(t, client, "booking_status_history", 1)
}

func TestEventsReadModel_ListEvents(t *testing.T) {
	client := setupSpanner(t)
	ctx := context.Background()
	outbox := NewOutboxRepo()
	comm := committer.NewCommitter(client)

	events := []domain.DomainEvent{
		&domain.PriceCalculatedEvent{BookingID: "bk-1"},
		&domain.BookingStatusChangedEvent{BookingID: "bk-1"},
		&domain.PriceCalculatedEvent{BookingID: "bk-2"},
	}
	for _, e := range events {
		plan := committer.NewPlan()
		plan.Add(outbox.InsertMut(outbox.EnrichEvent(e, `{"booking_id":"`+e.AggregateID()+`"}`)))
		require.NoError(t, comm.Apply(ctx, plan))
	}
	assertRowCount(t, client, m_outbox.TableName, 3)

	rm := NewEventsReadModel(client)

	bk1 := "bk-1"
	got, total, err := rm.ListEvents(ctx, &list_events.Request{AggregateID: &bk1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 1)
	assert.Equal(t, "booking.status.changed", got[0].EventType, "newest first")

	calculated := "booking.price.calculated"
	pending := m_outbox.StatusPending
	got, total, err = rm.ListEvents(ctx, &list_events.Request{EventType: &calculated, Status: &pending, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
	assert.True(t, got[0].Payload.Valid)
}
