package app

import (
	"context"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/failban"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnet"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnetlist"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

type FailbanUseCase interface {
	Check(ctx context.Context, ip string) (bool, error)
	ReportFailure(ctx context.Context, ip string) (bool, error)
	ListBans(ctx context.Context) ([]domain.Ban, error)
	Unban(ctx context.Context, subnet string) error
}

// Проверка реализации интерфейсов на этапе компиляции.
var (
	_ FailbanUseCase     = (*FailbanService)(nil)
	_ ports.SubnetHolder = (*FailbanService)(nil)
)

type FailbanService struct {
	trustPolicer ports.TrustPolicer
	engine       ports.BanEngine
	keyer        *subnet.Keyer
	banFor       time.Duration
	now          func() time.Time
	log          *logger.Logger
}

func NewFailbanService(
	recordStore ports.RecordStore,
	subnetRepo ports.SubnetRepo,
	cfg failban.Config,
	log *logger.Logger,
) (*FailbanService, error) {
	///// TrustPolicer /////
	// Доверенные подсети держим в памяти (subnetlist.SubnetPolicer),
	// загружаем из subnetRepo при старте и по сигналу об обновлении.
	trustPolicer := subnetlist.NewSubnetPolicer(subnetRepo)

	///// BanEngine /////
	// Учёт попыток и банов по подсетям, состояние в recordStore.
	engine, err := failban.NewEngine(recordStore, cfg)
	if err != nil {
		return nil, fmt.Errorf("failban engine init: %w", err)
	}

	return &FailbanService{
		trustPolicer: trustPolicer,
		engine:       engine,
		keyer:        engine.Keyer(),
		banFor:       cfg.BanDuration,
		now:          time.Now,
		log:          log,
	}, nil
}

// WithClock подменяет источник текущего времени.
func (s *FailbanService) WithClock(now func() time.Time) *FailbanService {
	s.now = now
	return s
}

func (s *FailbanService) Init(ctx context.Context) error {
	// Первоначальная загрузка доверенных подсетей
	if err := s.trustPolicer.ReloadSubnets(ctx); err != nil {
		return fmt.Errorf("initial trusted list load: %w", err)
	}
	return nil
}

func (s *FailbanService) ReloadSubnets(ctx context.Context) error {
	return s.trustPolicer.ReloadSubnets(ctx)
}

// Check сообщает, заблокирована ли подсеть адреса.
// Адреса из доверенных подсетей не блокируются никогда.
func (s *FailbanService) Check(ctx context.Context, ip string) (bool, error) {
	if s.trusted(ip) {
		return false, nil
	}
	return s.engine.IsBlocked(ctx, ip, s.now())
}

// ReportFailure учитывает неудачную попытку входа.
// Возвращает true, если подсеть после этой попытки забанена.
func (s *FailbanService) ReportFailure(ctx context.Context, ip string) (bool, error) {
	if s.trusted(ip) {
		s.log.DebugContext(ctx, "failure from trusted subnet ignored", "ip", ip)
		return false, nil
	}

	now := s.now()
	banned, err := s.engine.RecordFailure(ctx, ip, now)
	if err != nil {
		return false, err
	}
	if banned {
		sn, _ := s.keyer.Of(ip)
		s.log.WarnContext(ctx, "subnet banned",
			"subnet", sn, "ip", ip, "until", now.Add(s.banFor).UTC().Format(time.RFC3339))
	}
	return banned, nil
}

func (s *FailbanService) ListBans(ctx context.Context) ([]domain.Ban, error) {
	return s.engine.ListActive(ctx, s.now())
}

// Unban снимает бан. Имя подсети должно быть каноническим для текущей маски.
func (s *FailbanService) Unban(ctx context.Context, name string) error {
	sn, err := s.keyer.Parse(name)
	if err != nil {
		return err
	}
	if err := s.engine.Unban(ctx, sn); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "subnet unbanned", "subnet", sn)
	return nil
}

func (s *FailbanService) trusted(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	return s.trustPolicer.Trusted(addr)
}
