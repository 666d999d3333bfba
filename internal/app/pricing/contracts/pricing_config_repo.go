package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// RuleSnapshot is one organization's active pricing configuration, read at a single
// point in time.
type RuleSnapshot struct {
	OrganizationID string
	Rules          []domain.PricingRule
	Tiers          []domain.DiscountTier
	ReadAt         time.Time
}

// PricingConfigRepository reads and writes organization pricing rules and tiers.
type PricingConfigRepository interface {
	// LoadSnapshot reads the active rules and tiers of an organization in one
	// read-only transaction, so a calculation never mixes two versions of the config.
	// Rules come back ordered by priority descending, then creation time.
	LoadSnapshot(ctx context.Context, organizationID string) (*RuleSnapshot, error)

	// UpsertRuleMut creates a mutation writing a rule for an organization.
	UpsertRuleMut(organizationID string, rule domain.PricingRule, active bool) (*spanner.Mutation, error)

	// UpsertTierMut creates a mutation writing a discount tier for an organization.
	UpsertTierMut(organizationID string, tier domain.DiscountTier, active bool) (*spanner.Mutation, error)
}
