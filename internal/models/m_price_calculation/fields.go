package m_price_calculation

// Table name constant
const TableName = "price_calculations"

// Field name constants for type-safe database access
const (
	BookingID              = "booking_id"
	CalculationID          = "calculation_id"
	OrganizationID         = "organization_id"
	GuestCount             = "guest_count"
	EventDate              = "event_date"
	EventType              = "event_type"
	HallBasePrice          = "hall_base_price"
	MenuSubtotal           = "menu_subtotal"
	PackageSubtotal        = "package_subtotal"
	SubtotalBeforeDiscount = "subtotal_before_discount"
	AppliedTierID          = "applied_tier_id"
	GuestDiscountAmount    = "guest_discount_amount"
	RuleDiscountAmount     = "rule_discount_amount"
	TotalDiscount          = "total_discount"
	SubtotalAfterDiscount  = "subtotal_after_discount"
	SurchargeAmount        = "surcharge_amount"
	ServiceChargeAmount    = "service_charge_amount"
	TaxAmount              = "tax_amount"
	PlatformCommission     = "platform_commission"
	GrandTotal             = "grand_total"
	PricePerPerson         = "price_per_person"
	AdvancePaid            = "advance_paid"
	BalanceDue             = "balance_due"
	AppliedRuleIDs         = "applied_rule_ids"
	Adjustments            = "adjustments"
	CalculatedAt           = "calculated_at"
	UpdatedAt              = "updated_at"
)
