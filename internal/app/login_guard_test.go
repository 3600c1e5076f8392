package app

import (
	"context"
	"errors"
	"testing"
)

func TestLoginGuard(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	authCalls := 0
	guard := NewLoginGuard(AuthenticatorFunc(func(_ context.Context, login, password string) error {
		authCalls++
		if login == "admin" && password == "secret" {
			return nil
		}
		return ErrInvalidCredentials
	}), svc)

	if err := guard.Login(ctx, "203.0.113.7", "admin", "secret"); err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := guard.Login(ctx, "203.0.113.7", "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	calls := authCalls
	err := guard.Login(ctx, "203.0.113.99", "admin", "secret")
	if err == nil || err.Error() != "your subnet is temporarily blocked due to repeated failed logins" {
		t.Fatalf("expected generic blocked error, got %v", err)
	}
	if authCalls != calls {
		t.Fatalf("authenticator must not be called for a blocked subnet")
	}
}

func TestLoginGuard_OtherErrorsNotCounted(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	backendErr := errors.New("ldap timeout")
	guard := NewLoginGuard(AuthenticatorFunc(func(context.Context, string, string) error {
		return backendErr
	}), svc)

	for i := 0; i < 10; i++ {
		if err := guard.Login(ctx, "10.0.0.1", "u", "p"); !errors.Is(err, backendErr) {
			t.Fatalf("expected backend error to pass through, got %v", err)
		}
	}
	if blocked, _ := svc.Check(ctx, "10.0.0.1"); blocked {
		t.Fatalf("non-credential errors must not count as failures")
	}
}
