package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/marquee-pricing-service/internal/transport/grpc/pricing"
)

const defaultRequestTimeout = 10 * time.Second

// EventsLister is the slice of the pricing client the events endpoint needs.
type EventsLister interface {
	ListEvents(ctx context.Context, in *pricing.ListEventsRequest) (*pricing.ListEventsResponse, error)
}

// EventsHandler handles HTTP requests for events.
type EventsHandler struct {
	events EventsLister
	log    *zap.Logger
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(events EventsLister, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		events: events,
		log:    log,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles GET /api/v1/events requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	query := r.URL.Query()
	req := &pricing.ListEventsRequest{}

	if eventType := query.Get("event_type"); eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID := query.Get("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if st := query.Get("status"); st != "" {
		req.Status = &st
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		req.Limit = limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	resp, err := h.events.ListEvents(ctx, req)
	if err != nil {
		code := httpStatusFromGRPC(status.Code(err))
		if code >= http.StatusInternalServerError {
			h.log.Error("failed to list events", zap.Error(err))
		}
		writeJSON(w, code, errorResponse{Error: status.Convert(err).Message()})
		return
	}
	if resp.Events == nil {
		resp.Events = []pricing.EventMessage{}
	}

	writeJSON(w, http.StatusOK, resp)
}

func httpStatusFromGRPC(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition, codes.Aborted:
		return http.StatusConflict
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
