package m_pricing_rule

// Table name constant
const TableName = "pricing_rules"

// Field name constants for the pricing_rules table.
const (
	OrganizationID       = "organization_id"
	RuleID               = "rule_id"
	Name                 = "name"
	RuleType             = "rule_type"
	Percentage           = "percentage"
	FixedAmount          = "fixed_amount"
	MinGuests            = "min_guests"
	MaxGuests            = "max_guests"
	MinAmount            = "min_amount"
	MaxAmount            = "max_amount"
	ApplicableEventTypes = "applicable_event_types"
	ApplicableDays       = "applicable_days"
	ValidFrom            = "valid_from"
	ValidUntil           = "valid_until"
	Priority             = "priority"
	IsCumulative         = "is_cumulative"
	IsActive             = "is_active"
	CreatedAt            = "created_at"
)
