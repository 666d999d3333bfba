package m_price_calculation

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a stored price breakdown. Money columns are NUMERIC.
type Data struct {
	BookingID              string             `spanner:"booking_id"`
	CalculationID          string             `spanner:"calculation_id"`
	OrganizationID         string             `spanner:"organization_id"`
	GuestCount             int64              `spanner:"guest_count"`
	EventDate              time.Time          `spanner:"event_date"`
	EventType              spanner.NullString `spanner:"event_type"`
	HallBasePrice          big.Rat            `spanner:"hall_base_price"`
	MenuSubtotal           big.Rat            `spanner:"menu_subtotal"`
	PackageSubtotal        big.Rat            `spanner:"package_subtotal"`
	SubtotalBeforeDiscount big.Rat            `spanner:"subtotal_before_discount"`
	AppliedTierID          spanner.NullString `spanner:"applied_tier_id"`
	GuestDiscountAmount    big.Rat            `spanner:"guest_discount_amount"`
	RuleDiscountAmount     big.Rat            `spanner:"rule_discount_amount"`
	TotalDiscount          big.Rat            `spanner:"total_discount"`
	SubtotalAfterDiscount  big.Rat            `spanner:"subtotal_after_discount"`
	SurchargeAmount        big.Rat            `spanner:"surcharge_amount"`
	ServiceChargeAmount    big.Rat            `spanner:"service_charge_amount"`
	TaxAmount              big.Rat            `spanner:"tax_amount"`
	PlatformCommission     big.Rat            `spanner:"platform_commission"`
	GrandTotal             big.Rat            `spanner:"grand_total"`
	PricePerPerson         big.Rat            `spanner:"price_per_person"`
	AdvancePaid            big.Rat            `spanner:"advance_paid"`
	BalanceDue             big.Rat            `spanner:"balance_due"`
	AppliedRuleIDs         []string           `spanner:"applied_rule_ids"`
	Adjustments            spanner.NullJSON   `spanner:"adjustments"`
	CalculatedAt           time.Time          `spanner:"calculated_at"`
	UpdatedAt              time.Time          `spanner:"updated_at"`
}
