package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"vidtube/internal/logging"
)

// UnaryLogger is the gRPC counterpart of RequestLogger for the health
// server: it scopes a logger to the call and logs the method and code.
func UnaryLogger(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		requestID := uuid.NewString()

		callLogger := base.With(
			slog.String("request_id", requestID),
			slog.String("grpc_method", info.FullMethod),
		)
		ctx = logging.WithLogger(ctx, callLogger)
		ctx = logging.WithRequestID(ctx, requestID)

		resp, err := handler(ctx, req)

		callLogger.Debug("grpc call completed",
			slog.String("code", status.Code(err).String()),
			slog.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
