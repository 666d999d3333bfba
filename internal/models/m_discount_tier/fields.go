package m_discount_tier

// Table name constant
const TableName = "discount_tiers"

// Field name constants for the discount_tiers table.
const (
	OrganizationID     = "organization_id"
	TierID             = "tier_id"
	Name               = "name"
	MinGuests          = "min_guests"
	MaxGuests          = "max_guests"
	DiscountPercentage = "discount_percentage"
	IsActive           = "is_active"
	CreatedAt          = "created_at"
)
