package grpcserver

import (
	"context"

	failbanv1 "github.com/Alexandr-Snisarenko/subnet-failban/api/proto/failban/v1"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/app"
)

var _ failbanv1.FailbanServer = (*Server)(nil)

type Server struct {
	failbanv1.UnimplementedFailbanServer
	failban app.FailbanUseCase
	trusted app.TrustedListUseCase
}

func NewServer(failban app.FailbanUseCase, trusted app.TrustedListUseCase) *Server {
	return &Server{
		failban: failban,
		trusted: trusted,
	}
}

// Check не проверяет формат IP: некорректный адрес просто не бывает заблокирован.
// Ответ содержит только флаг, без счётчиков и времени разблокировки.
func (s *Server) Check(ctx context.Context, req *failbanv1.CheckRequest) (*failbanv1.CheckResponse, error) {
	if s.failban == nil {
		return nil, toStatus(ErrFailbanNotConfigured)
	}

	blocked, err := s.failban.Check(ctx, req.Ip)
	if err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.CheckResponse{Blocked: blocked}, nil
}

func (s *Server) ReportFailure(
	ctx context.Context,
	req *failbanv1.ReportFailureRequest,
) (*failbanv1.ReportFailureResponse, error) {
	if s.failban == nil {
		return nil, toStatus(ErrFailbanNotConfigured)
	}

	banned, err := s.failban.ReportFailure(ctx, req.Ip)
	if err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.ReportFailureResponse{Banned: banned}, nil
}

func (s *Server) ListBans(ctx context.Context, _ *failbanv1.ListBansRequest) (*failbanv1.ListBansResponse, error) {
	if s.failban == nil {
		return nil, toStatus(ErrFailbanNotConfigured)
	}

	bans, err := s.failban.ListBans(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &failbanv1.ListBansResponse{Bans: make([]*failbanv1.Ban, 0, len(bans))}
	for _, b := range bans {
		resp.Bans = append(resp.Bans, &failbanv1.Ban{Subnet: b.Subnet.String(), ExpiresAt: b.ExpiresAt.Unix()})
	}
	return resp, nil
}

func (s *Server) Unban(ctx context.Context, req *failbanv1.UnbanRequest) (*failbanv1.UnbanResponse, error) {
	if s.failban == nil {
		return nil, toStatus(ErrFailbanNotConfigured)
	}

	if err := s.failban.Unban(ctx, req.Subnet); err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.UnbanResponse{}, nil
}

func (s *Server) AddTrusted(
	ctx context.Context,
	req *failbanv1.ManageCIDRRequest,
) (*failbanv1.ManageCIDRResponse, error) {
	if s.trusted == nil {
		return nil, toStatus(ErrTrustedListNotConfigured)
	}

	if err := s.trusted.AddTrusted(ctx, req.Cidr); err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.ManageCIDRResponse{}, nil
}

func (s *Server) RemoveTrusted(
	ctx context.Context,
	req *failbanv1.ManageCIDRRequest,
) (*failbanv1.ManageCIDRResponse, error) {
	if s.trusted == nil {
		return nil, toStatus(ErrTrustedListNotConfigured)
	}

	if err := s.trusted.RemoveTrusted(ctx, req.Cidr); err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.ManageCIDRResponse{}, nil
}

func (s *Server) ListTrusted(
	ctx context.Context,
	_ *failbanv1.ListTrustedRequest,
) (*failbanv1.ListTrustedResponse, error) {
	if s.trusted == nil {
		return nil, toStatus(ErrTrustedListNotConfigured)
	}

	cidrs, err := s.trusted.ListTrusted(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.ListTrustedResponse{Cidrs: cidrs}, nil
}

func (s *Server) ClearTrusted(
	ctx context.Context,
	_ *failbanv1.ClearTrustedRequest,
) (*failbanv1.ClearTrustedResponse, error) {
	if s.trusted == nil {
		return nil, toStatus(ErrTrustedListNotConfigured)
	}

	if err := s.trusted.ClearTrusted(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &failbanv1.ClearTrustedResponse{}, nil
}
