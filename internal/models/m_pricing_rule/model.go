package m_pricing_rule

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the pricing_rules table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ReadColumns returns the columns Data is scanned from, in declaration order.
func (m *Model) ReadColumns() []string {
	return []string{
		OrganizationID,
		RuleID,
		Name,
		RuleType,
		Percentage,
		FixedAmount,
		MinGuests,
		MaxGuests,
		MinAmount,
		MaxAmount,
		ApplicableEventTypes,
		ApplicableDays,
		ValidFrom,
		ValidUntil,
		Priority,
		IsCumulative,
		IsActive,
		CreatedAt,
	}
}

// UpsertMut creates a mutation writing a full rule row. created_at is set to the commit time.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, m.ReadColumns(), []interface{}{
		data.OrganizationID,
		data.RuleID,
		data.Name,
		data.RuleType,
		data.Percentage,
		data.FixedAmount,
		data.MinGuests,
		data.MaxGuests,
		data.MinAmount,
		data.MaxAmount,
		data.ApplicableEventTypes,
		data.ApplicableDays,
		data.ValidFrom,
		data.ValidUntil,
		data.Priority,
		data.IsCumulative,
		data.IsActive,
		spanner.CommitTimestamp,
	})
}
