package m_discount_tier

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the discount_tiers table.
type Data struct {
	OrganizationID     string    `spanner:"organization_id"`
	TierID             string    `spanner:"tier_id"`
	Name               string    `spanner:"name"`
	MinGuests          int64     `spanner:"min_guests"`
	MaxGuests          int64     `spanner:"max_guests"`
	DiscountPercentage big.Rat   `spanner:"discount_percentage"`
	IsActive           bool      `spanner:"is_active"`
	CreatedAt          time.Time `spanner:"created_at"`
}

// Model provides type-safe database operations for discount tiers.
type Model struct{}

// NewModel creates a new discount tier model.
func NewModel() *Model {
	return &Model{}
}

// ReadColumns returns the column names for reading discount tiers.
func (m *Model) ReadColumns() []string {
	return []string{
		OrganizationID,
		TierID,
		Name,
		MinGuests,
		MaxGuests,
		DiscountPercentage,
		IsActive,
		CreatedAt,
	}
}

// UpsertMut creates a mutation writing a full tier row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, m.ReadColumns(), []interface{}{
		data.OrganizationID,
		data.TierID,
		data.Name,
		data.MinGuests,
		data.MaxGuests,
		&data.DiscountPercentage,
		data.IsActive,
		spanner.CommitTimestamp,
	})
}
