package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/models/m_price_calculation"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
	model  *m_price_calculation.Model
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
		model:  m_price_calculation.NewModel(),
	}
}

// GetPriceCalculation reads the stored breakdown of a booking.
func (rm *ReadModelImpl) GetPriceCalculation(ctx context.Context, bookingID string) (*contracts.PriceCalculation, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_price_calculation.TableName, spanner.Key{bookingID}, rm.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCalculationNotFound
		}
		return nil, fmt.Errorf("failed to read price calculation: %w", err)
	}

	var data m_price_calculation.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse price calculation: %w", err)
	}

	return dataToCalculation(&data)
}
