package pricing

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/get_price_calculation"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/package_price"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/quote_price"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/queries/suggest_menu"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/usecases/change_booking_status"
	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/usecases/recalculate_price"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/metrics"
)

// Handler implements PricingServiceServer.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	recalculatePrice    *recalculate_price.Interactor
	changeBookingStatus *change_booking_status.Interactor

	// Queries
	quotePrice          *quote_price.Query
	getPriceCalculation *get_price_calculation.Query
	packagePrice        *package_price.Query
	suggestMenu         *suggest_menu.Query
	listEvents          *list_events.Query

	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new gRPC pricing handler.
func NewHandler(
	recalculatePrice *recalculate_price.Interactor,
	changeBookingStatus *change_booking_status.Interactor,
	quotePrice *quote_price.Query,
	getPriceCalculation *get_price_calculation.Query,
	packagePrice *package_price.Query,
	suggestMenu *suggest_menu.Query,
	listEvents *list_events.Query,
	log *zap.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		recalculatePrice:    recalculatePrice,
		changeBookingStatus: changeBookingStatus,
		quotePrice:          quotePrice,
		getPriceCalculation: getPriceCalculation,
		packagePrice:        packagePrice,
		suggestMenu:         suggestMenu,
		listEvents:          listEvents,
		log:                 log,
		metrics:             m,
	}
}

var _ PricingServiceServer = (*Handler)(nil)

// QuotePrice prices a prospective booking without storing it.
func (h *Handler) QuotePrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	// 1. Decode and validate
	var req QuotePriceRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	if err := validatePricingRequest(&req.PricingRequestMessage); err != nil {
		return nil, err
	}

	// 2. Map wire → application request
	pricing, err := toPricingRequest(&req.PricingRequestMessage)
	if err != nil {
		h.observeCalculation("quote", err)
		return nil, mapDomainErrorToGRPC(err)
	}

	// 3. Call query
	breakdown, err := h.quotePrice.Execute(ctx, &quote_price.Request{Pricing: pricing})
	h.observeCalculation("quote", err)
	if err != nil {
		return nil, h.fail(ctx, MethodQuotePrice, err)
	}

	// 4. Return response
	return toStruct(QuotePriceResponse{Breakdown: toBreakdownMessage(breakdown)})
}

// RecalculateBookingPrice prices a booking and stores the result.
func (h *Handler) RecalculateBookingPrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req RecalculateBookingPriceRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	if err := validateRecalculateRequest(&req); err != nil {
		return nil, err
	}

	pricing, err := toPricingRequest(&req.PricingRequestMessage)
	if err != nil {
		h.observeCalculation("recalculate", err)
		return nil, mapDomainErrorToGRPC(err)
	}

	calc, err := h.recalculatePrice.Execute(ctx, &recalculate_price.Request{BookingID: req.BookingID, Pricing: pricing})
	h.observeCalculation("recalculate", err)
	if err != nil {
		return nil, h.fail(ctx, MethodRecalculateBookingPrice, err)
	}

	h.log.Info("booking price recalculated",
		zap.String("booking_id", calc.BookingID),
		zap.String("calculation_id", calc.CalculationID),
		zap.String("grand_total", calc.Breakdown.GrandTotal.String()),
	)
	return toStruct(toCalculationMessage(calc))
}

// GetPriceCalculation returns the stored calculation of a booking.
func (h *Handler) GetPriceCalculation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GetPriceCalculationRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}

	calc, err := h.getPriceCalculation.Execute(ctx, &get_price_calculation.Request{BookingID: req.BookingID})
	if err != nil {
		return nil, h.fail(ctx, MethodGetPriceCalculation, err)
	}
	return toStruct(toCalculationMessage(calc))
}

// CalculatePackagePrice returns price_per_person * guest_count.
func (h *Handler) CalculatePackagePrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CalculatePackagePriceRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	price, err := parseMoney("price_per_person", req.PricePerPerson, true)
	if err != nil {
		return nil, err
	}

	total, err := h.packagePrice.Execute(&package_price.Request{PricePerPerson: price, GuestCount: req.GuestCount})
	if err != nil {
		return nil, h.fail(ctx, MethodCalculatePackagePrice, err)
	}
	return toStruct(CalculatePackagePriceResponse{Total: total.String()})
}

// SuggestMenu builds a menu for a target budget.
func (h *Handler) SuggestMenu(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SuggestMenuRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	budget, err := toBudgetRequest(&req)
	if err != nil {
		return nil, err
	}

	suggestion, err := h.suggestMenu.Execute(ctx, budget)
	if err != nil {
		return nil, h.fail(ctx, MethodSuggestMenu, err)
	}
	return toStruct(toSuggestionMessage(suggestion))
}

// ChangeBookingStatus confirms, cancels or completes a booking.
func (h *Handler) ChangeBookingStatus(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ChangeBookingStatusRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	if err := validateChangeBookingStatusRequest(&req); err != nil {
		return nil, err
	}

	rec, err := h.changeBookingStatus.Execute(ctx, &change_booking_status.Request{
		BookingID:       req.BookingID,
		TargetStatus:    req.Status,
		ChangedBy:       req.ChangedBy,
		Reason:          req.Reason,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodChangeBookingStatus, err)
	}

	h.metrics.ObserveStatusChange(string(rec.Status))
	h.log.Info("booking status changed",
		zap.String("booking_id", rec.BookingID),
		zap.String("status", string(rec.Status)),
		zap.Int64("version", rec.Version),
		zap.String("changed_by", req.ChangedBy),
	)
	return toStruct(toStatusMessage(rec))
}

// ListEvents returns outbox events for auditing.
func (h *Handler) ListEvents(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListEventsRequest
	if err := fromStruct(in, &req, true); err != nil {
		return nil, err
	}
	if err := validateListEventsRequest(&req); err != nil {
		return nil, err
	}

	events, total, err := h.listEvents.Execute(ctx, &list_events.Request{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodListEvents, err)
	}

	resp := ListEventsResponse{Events: make([]EventMessage, 0, len(events)), TotalCount: total}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventMessage(e))
	}
	return toStruct(resp)
}

// fail maps err to a status, logging errors that are not the caller's fault.
func (h *Handler) fail(ctx context.Context, method string, err error) error {
	st := mapDomainErrorToGRPC(err)
	if ctx.Err() == nil && isServerError(err) {
		h.log.Error("request failed", zap.String("method", method), zap.Error(err))
	}
	return st
}

func isServerError(err error) bool {
	for _, known := range []error{
		domain.ErrInvalidInput,
		domain.ErrArithmeticOverflow,
		domain.ErrUnknownStatus,
		domain.ErrMissingActor,
		domain.ErrInvalidStatusTransition,
		domain.ErrBookingClosed,
		domain.ErrCalculationNotFound,
		domain.ErrBookingNotFound,
		committer.ErrVersionConflict,
		committer.ErrRowNotFound,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}

func (h *Handler) observeCalculation(operation string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidInput), status.Code(err) == codes.InvalidArgument:
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrArithmeticOverflow):
		outcome = metrics.OutcomeOverflow
	default:
		outcome = metrics.OutcomeError
	}
	h.metrics.ObserveCalculation(operation, outcome)
}
