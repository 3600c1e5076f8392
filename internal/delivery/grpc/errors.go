package grpcserver

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnetlist"
)

var (
	ErrFailbanNotConfigured     = errors.New("failban service not configured")
	ErrTrustedListNotConfigured = errors.New("trusted list not configured")
)

// toStatus переводит доменные ошибки в gRPC-статусы.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		code = codes.Unavailable
	case errors.Is(err, domain.ErrInvalidSubnet), errors.Is(err, subnetlist.ErrInvalidCIDR):
		code = codes.InvalidArgument
	case errors.Is(err, ErrFailbanNotConfigured), errors.Is(err, ErrTrustedListNotConfigured):
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
