package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/get_price_calculation"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/package_price"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/quote_price"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/suggest_menu"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/usecases/change_booking_status"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/usecases/recalculate_price"
	"github.com/light-bringer/marquee-pricing-service/internal/config"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/clock"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/metrics"
	"github.com/light-bringer/marquee-pricing-service/internal/transport/grpc/pricing"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	PricingHandler *pricing.Handler
	Metrics        *metrics.Metrics
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	m := metrics.New()

	// 3. Create repositories
	configRepo := repo.NewPricingConfigRepo(spannerClient)
	calcRepo := repo.NewPriceCalculationRepo(spannerClient)
	statusRepo := repo.NewBookingStatusRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo()
	readModel := repo.NewReadModel(spannerClient)
	eventsReadModel := repo.NewEventsReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	recalculateUseCase := recalculate_price.NewInteractor(configRepo, calcRepo, statusRepo, outboxRepo, comm, clk)
	changeStatusUseCase := change_booking_status.NewInteractor(statusRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	quoteQuery := quote_price.NewQuery(configRepo)
	getCalculationQuery := get_price_calculation.NewQuery(readModel)
	packagePriceQuery := package_price.NewQuery()
	suggestMenuQuery := suggest_menu.NewQuery()
	listEventsQuery := list_events.NewQuery(eventsReadModel)

	// 6. Create gRPC handler
	pricingHandler := pricing.NewHandler(
		recalculateUseCase,
		changeStatusUseCase,
		quoteQuery,
		getCalculationQuery,
		packagePriceQuery,
		suggestMenuQuery,
		listEventsQuery,
		log,
		m,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		PricingHandler: pricingHandler,
		Metrics:        m,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
