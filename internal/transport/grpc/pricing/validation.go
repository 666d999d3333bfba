package pricing

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func validatePricingRequest(req *PricingRequestMessage) error {
	if req.OrganizationID == "" {
		return status.Error(codes.InvalidArgument, "organization_id is required")
	}
	if req.EventDate == "" {
		return status.Error(codes.InvalidArgument, "event_date is required")
	}
	return nil
}

func validateRecalculateRequest(req *RecalculateBookingPriceRequest) error {
	if req.BookingID == "" {
		return status.Error(codes.InvalidArgument, "booking_id is required")
	}
	return validatePricingRequest(&req.PricingRequestMessage)
}

func validateChangeBookingStatusRequest(req *ChangeBookingStatusRequest) error {
	if req.BookingID == "" {
		return status.Error(codes.InvalidArgument, "booking_id is required")
	}
	if req.Status == "" {
		return status.Error(codes.InvalidArgument, "status is required")
	}
	if req.ChangedBy == "" {
		return status.Error(codes.InvalidArgument, "changed_by is required")
	}
	if req.ExpectedVersion != nil && *req.ExpectedVersion < 1 {
		return status.Error(codes.InvalidArgument, "expected_version must be positive")
	}
	return nil
}

func validateListEventsRequest(req *ListEventsRequest) error {
	if req.Limit < 0 {
		return status.Error(codes.InvalidArgument, "limit must not be negative")
	}
	return nil
}
