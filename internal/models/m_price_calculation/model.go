package m_price_calculation

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the price_calculations table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ReadColumns returns the columns Data is scanned from.
func (m *Model) ReadColumns() []string {
	return []string{
		BookingID,
		CalculationID,
		OrganizationID,
		GuestCount,
		EventDate,
		EventType,
		HallBasePrice,
		MenuSubtotal,
		PackageSubtotal,
		SubtotalBeforeDiscount,
		AppliedTierID,
		GuestDiscountAmount,
		RuleDiscountAmount,
		TotalDiscount,
		SubtotalAfterDiscount,
		SurchargeAmount,
		ServiceChargeAmount,
		TaxAmount,
		PlatformCommission,
		GrandTotal,
		PricePerPerson,
		AdvancePaid,
		BalanceDue,
		AppliedRuleIDs,
		Adjustments,
		CalculatedAt,
		UpdatedAt,
	}
}

// UpsertMut replaces the stored breakdown of a booking. updated_at is the commit time.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, m.ReadColumns(), []interface{}{
		data.BookingID,
		data.CalculationID,
		data.OrganizationID,
		data.GuestCount,
		data.EventDate,
		data.EventType,
		&data.HallBasePrice,
		&data.MenuSubtotal,
		&data.PackageSubtotal,
		&data.SubtotalBeforeDiscount,
		data.AppliedTierID,
		&data.GuestDiscountAmount,
		&data.RuleDiscountAmount,
		&data.TotalDiscount,
		&data.SubtotalAfterDiscount,
		&data.SurchargeAmount,
		&data.ServiceChargeAmount,
		&data.TaxAmount,
		&data.PlatformCommission,
		&data.GrandTotal,
		&data.PricePerPerson,
		&data.AdvancePaid,
		&data.BalanceDue,
		data.AppliedRuleIDs,
		data.Adjustments,
		data.CalculatedAt,
		spanner.CommitTimestamp,
	})
}

// DeleteMut removes the stored breakdown of a booking.
func (m *Model) DeleteMut(bookingID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{bookingID})
}
