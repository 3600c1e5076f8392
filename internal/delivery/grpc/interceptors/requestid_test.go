package interceptors

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ctxmeta"
)

func TestUnaryRequestIDInterceptor(t *testing.T) {
	interceptor := UnaryRequestIDInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/failban.v1.Failban/Check"}

	var got string
	handler := func(ctx context.Context, _ any) (any, error) {
		got, _ = ctxmeta.RequestID(ctx)
		return nil, nil
	}

	// id from incoming metadata is kept
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "rid-42"))
	if _, err := interceptor(ctx, nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "rid-42" {
		t.Fatalf("expected rid-42, got %q", got)
	}

	// missing id is generated
	if _, err := interceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}
