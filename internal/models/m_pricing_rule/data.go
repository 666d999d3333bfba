package m_pricing_rule

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the pricing_rules table.
// ApplicableDays holds time.Weekday values (0 = Sunday).
type Data struct {
	OrganizationID       string              `spanner:"organization_id"`
	RuleID               string              `spanner:"rule_id"`
	Name                 string              `spanner:"name"`
	RuleType             string              `spanner:"rule_type"`
	Percentage           spanner.NullNumeric `spanner:"percentage"`
	FixedAmount          spanner.NullNumeric `spanner:"fixed_amount"`
	MinGuests            spanner.NullInt64   `spanner:"min_guests"`
	MaxGuests            spanner.NullInt64   `spanner:"max_guests"`
	MinAmount            spanner.NullNumeric `spanner:"min_amount"`
	MaxAmount            spanner.NullNumeric `spanner:"max_amount"`
	ApplicableEventTypes []string            `spanner:"applicable_event_types"`
	ApplicableDays       []int64             `spanner:"applicable_days"`
	ValidFrom            spanner.NullTime    `spanner:"valid_from"`
	ValidUntil           spanner.NullTime    `spanner:"valid_until"`
	Priority             int64               `spanner:"priority"`
	IsCumulative         bool                `spanner:"is_cumulative"`
	IsActive             bool                `spanner:"is_active"`
	CreatedAt            time.Time           `spanner:"created_at"`
}
