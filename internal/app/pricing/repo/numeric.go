package repo

import (
	"fmt"
	"math/big"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
)

// numericFromMoney converts an amount for a NOT NULL NUMERIC column.
func numericFromMoney(m *domain.Money) (big.Rat, error) {
	if m == nil {
		m = domain.Zero()
	}
	if !m.InRange() {
		return big.Rat{}, &domain.OverflowError{Step: "store", Amount: m.String()}
	}
	return *m.Decimal().Rat(), nil
}

func nullNumericFromMoney(m *domain.Money) spanner.NullNumeric {
	if m == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *m.Decimal().Rat(), Valid: true}
}

func nullNumericFromDecimal(d *decimal.Decimal) spanner.NullNumeric {
	if d == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *d.Rat(), Valid: true}
}

func moneyFromNumeric(r *big.Rat) (*domain.Money, error) {
	m, err := domain.NewMoney(spanner.NumericString(r))
	if err != nil {
		return nil, fmt.Errorf("invalid NUMERIC amount: %w", err)
	}
	return m.Round(), nil
}

func moneyFromNullNumeric(n spanner.NullNumeric) (*domain.Money, error) {
	if !n.Valid {
		return nil, nil
	}
	return moneyFromNumeric(&n.Numeric)
}

func decimalFromNumeric(r *big.Rat) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(spanner.NumericString(r))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid NUMERIC value: %w", err)
	}
	return d, nil
}

func decimalFromNullNumeric(n spanner.NullNumeric) (*decimal.Decimal, error) {
	if !n.Valid {
		return nil, nil
	}
	d, err := decimalFromNumeric(&n.Numeric)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullInt(v *int) spanner.NullInt64 {
	if v == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: int64(*v), Valid: true}
}

func intFromNull(n spanner.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
