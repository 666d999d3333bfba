package quote_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

type fakeConfigRepo struct {
	snapshots map[string]*contracts.RuleSnapshot
	calls     int
}

func (f *fakeConfigRepo) LoadSnapshot(_ context.Context, orgID string) (*contracts.RuleSnapshot, error) {
	f.calls++
	s, ok := f.snapshots[orgID]
	if !ok {
		return nil, errors.New("no such organization")
	}
	return s, nil
}

func (f *fakeConfigRepo) UpsertRuleMut(string, domain.PricingRule, bool) (*spanner.Mutation, error) {
	return &spanner.Mutation{}, nil
}

func (f *fakeConfigRepo) UpsertTierMut(string, domain.DiscountTier, bool) (*spanner.Mutation, error) {
	return &spanner.Mutation{}, nil
}

func TestExecute_UsesOrganizationSnapshot(t *testing.T) {
	tax := decimal.NewFromInt(18)
	fee := decimal.NewFromInt(2)
	repo := &fakeConfigRepo{snapshots: map[string]*contracts.RuleSnapshot{
		"org-1": {Rules: []domain.PricingRule{
			{ID: "gst", Type: domain.RuleTypeTax, Percentage: &tax, IsCumulative: true},
			{ID: "platform", Type: domain.RuleTypePlatformFee, Percentage: &fee, IsCumulative: true},
		}},
		"org-2": {},
	}}

	req := &Request{Pricing: contracts.PricingRequest{
		OrganizationID: "org-1",
		HallBasePrice:  domain.MustMoney("10000"),
		GuestCount:     100,
		EventDate:      time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}}

	b, err := NewQuery(repo).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "1800.00", b.TaxAmount.String())
	assert.Equal(t, "200.00", b.PlatformCommission.String())
	assert.Equal(t, "11800.00", b.GrandTotal.String())
	assert.Equal(t, []string{"gst", "platform"}, b.AppliedRuleIDs)

	req.Pricing.OrganizationID = "org-2"
	b, err = NewQuery(repo).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "10000.00", b.GrandTotal.String())
}

func TestExecute_Errors(t *testing.T) {
	repo := &fakeConfigRepo{snapshots: map[string]*contracts.RuleSnapshot{"org-1": {}}}

	t.Run("organization required", func(t *testing.T) {
		_, err := NewQuery(repo).Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		_, err := NewQuery(repo).Execute(context.Background(), &Request{Pricing: contracts.PricingRequest{OrganizationID: "org-9"}})
		assert.ErrorContains(t, err, "failed to load pricing configuration")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := NewQuery(repo).Execute(context.Background(), &Request{Pricing: contracts.PricingRequest{
			OrganizationID: "org-1",
			HallBasePrice:  domain.MustMoney("100"),
		}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
