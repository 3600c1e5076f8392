package interceptors

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ctxmeta"
)

const RequestIDHeader = "x-request-id"

func UnaryRequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var rid string

		// берём request id из metadata, если клиент его прислал
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(RequestIDHeader); len(vals) > 0 && vals[0] != "" {
				rid = vals[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx = ctxmeta.WithRequestID(ctx, rid)

		// отдаём x-request-id клиенту в заголовках ответа
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, rid))

		return handler(ctx, req)
	}
}
