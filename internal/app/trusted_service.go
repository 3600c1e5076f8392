package app

import (
	"context"
	"fmt"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnetlist"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

type TrustedListUseCase interface {
	AddTrusted(ctx context.Context, cidr string) error
	RemoveTrusted(ctx context.Context, cidr string) error
	ListTrusted(ctx context.Context) ([]string, error)
	ClearTrusted(ctx context.Context) error
}

// Проверка реализации интерфейса TrustedListUseCase на этапе компиляции.
var _ TrustedListUseCase = (*TrustedListService)(nil)

// TrustedListService меняет список доверенных подсетей в репозитории
// и оповещает все экземпляры сервиса о необходимости его перечитать.
// CIDR приводится к адресу сети, так что "10.1.2.3/8" и "10.0.0.0/8" дают одну запись.
type TrustedListService struct {
	subnetRepo            ports.SubnetRepo
	subnetUpdatePublisher ports.SubnetUpdatesPublisher
}

func NewTrustedListService(
	subnetRepo ports.SubnetRepo,
	subnetUpdatePublisher ports.SubnetUpdatesPublisher,
) *TrustedListService {
	return &TrustedListService{
		subnetRepo:            subnetRepo,
		subnetUpdatePublisher: subnetUpdatePublisher,
	}
}

func (s *TrustedListService) AddTrusted(ctx context.Context, cidr string) error {
	p, err := subnetlist.ParseCIDR(cidr)
	if err != nil {
		return err
	}
	if err := s.subnetRepo.AddCIDRToSubnetList(ctx, domain.Trusted, p.String()); err != nil {
		return fmt.Errorf("add trusted subnet: %w", err)
	}
	return s.publish(ctx)
}

func (s *TrustedListService) RemoveTrusted(ctx context.Context, cidr string) error {
	p, err := subnetlist.ParseCIDR(cidr)
	if err != nil {
		return err
	}
	if err := s.subnetRepo.RemoveCIDRFromSubnetList(ctx, domain.Trusted, p.String()); err != nil {
		return fmt.Errorf("remove trusted subnet: %w", err)
	}
	return s.publish(ctx)
}

// ClearTrusted удаляет все доверенные подсети, включая добавленные из конфига
// (при следующем старте они будут добавлены снова).
func (s *TrustedListService) ClearTrusted(ctx context.Context) error {
	if err := s.subnetRepo.ClearSubnetList(ctx, domain.Trusted); err != nil {
		return fmt.Errorf("clear trusted subnets: %w", err)
	}
	return s.publish(ctx)
}

func (s *TrustedListService) ListTrusted(ctx context.Context) ([]string, error) {
	cidrs, err := s.subnetRepo.GetSubnetLists(ctx, domain.Trusted)
	if err != nil {
		return nil, fmt.Errorf("get trusted subnets: %w", err)
	}
	return cidrs, nil
}

// Seed добавляет подсети из конфига к уже сохранённым. Вызывается при старте,
// до первой загрузки списка, поэтому никого не оповещает.
func (s *TrustedListService) Seed(ctx context.Context, cidrs []string) error {
	if len(cidrs) == 0 {
		return nil
	}
	canonical := make([]string, 0, len(cidrs))
	for _, c := range cidrs {
		p, err := subnetlist.ParseCIDR(c)
		if err != nil {
			return err
		}
		canonical = append(canonical, p.String())
	}
	if err := s.subnetRepo.SaveSubnetList(ctx, domain.Trusted, canonical); err != nil {
		return fmt.Errorf("seed trusted subnets: %w", err)
	}
	return nil
}

func (s *TrustedListService) publish(ctx context.Context) error {
	// Сообщаем всем подписчикам об изменении списка
	if err := s.subnetUpdatePublisher.PublishSubnetUpdated(ctx); err != nil {
		return fmt.Errorf("publish subnet update: %w", err)
	}
	return nil
}
