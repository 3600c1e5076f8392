package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
)

func UnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		st, _ := status.FromError(err)
		remoteAddr := "unknown"
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			remoteAddr = p.Addr.String()
		}

		fields := []any{
			"method", info.FullMethod,
			"duration", time.Since(start).String(),
			"grpc_code", st.Code().String(),
			"remote_addr", remoteAddr,
		}

		switch {
		case err == nil:
			log.InfoContext(ctx, "gRPC request handled", fields...)
		case st.Code() == codes.InvalidArgument:
			// ошибки клиента не засоряют error-лог
			log.WarnContext(ctx, "gRPC request rejected", append(fields, "error", err)...)
		default:
			log.ErrorContext(ctx, "gRPC request failed", append(fields, "error", err)...)
		}

		return resp, err
	}
}
