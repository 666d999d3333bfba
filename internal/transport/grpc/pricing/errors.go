package pricing

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/marquee-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/marquee-pricing-service/internal/pkg/committer"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	// Already a status (request decoding, mapping)
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrMissingActor):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, domain.ErrArithmeticOverflow):
		return status.Error(codes.OutOfRange, err.Error())

	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrBookingClosed):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, domain.ErrCalculationNotFound):
		return status.Error(codes.NotFound, "price calculation not found")

	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, committer.ErrRowNotFound):
		return status.Error(codes.NotFound, "booking not found")

	case errors.Is(err, committer.ErrVersionConflict):
		return status.Error(codes.Aborted, "booking was modified concurrently, reload and retry")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	default:
		// Unknown error - return Internal
		return status.Error(codes.Internal, "internal server error")
	}
}
