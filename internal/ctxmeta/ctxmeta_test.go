package ctxmeta

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	if _, ok := RequestID(context.Background()); ok {
		t.Fatal("expected no request id in empty context")
	}

	ctx := WithRequestID(context.Background(), "rid-1")
	rid, ok := RequestID(ctx)
	if !ok || rid != "rid-1" {
		t.Fatalf("unexpected request id: %q ok=%v", rid, ok)
	}

	if _, ok := RequestID(WithRequestID(context.Background(), "")); ok {
		t.Fatal("empty request id must be reported as missing")
	}
}
