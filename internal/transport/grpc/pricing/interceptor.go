package pricing

import (
	"context"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/marquee-pricing-service/internal/pkg/metrics"
)

// UnaryServerInterceptor logs and measures every unary call and turns panics into
// Internal errors.
func UnaryServerInterceptor(log *zap.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				resp, err = nil, status.Error(codes.Internal, "internal server error")
			}

			code := status.Code(err)
			elapsed := time.Since(start)
			m.ObserveRequest(info.FullMethod, code.String(), elapsed)

			fields := []zap.Field{
				zap.String("method", info.FullMethod),
				zap.String("code", code.String()),
				zap.Duration("duration", elapsed),
			}
			switch code {
			case codes.OK:
				log.Debug("request completed", fields...)
			case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
				log.Error("request failed", append(fields, zap.Error(err))...)
			default:
				log.Info("request rejected", append(fields, zap.Error(err))...)
			}
		}()

		return handler(ctx, req)
	}
}
