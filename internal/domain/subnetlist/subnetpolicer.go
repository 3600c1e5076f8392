package subnetlist

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.TrustPolicer = (*SubnetPolicer)(nil)

// SubnetPolicer держит в памяти список доверенных подсетей
// и перечитывает его из репозитория по сигналу об обновлении.
type SubnetPolicer struct {
	TrustedList *SubnetList
	repo        ports.SubnetRepo
}

func NewSubnetPolicer(repo ports.SubnetRepo) *SubnetPolicer {
	return &SubnetPolicer{
		TrustedList: NewSubnetList(domain.Trusted),
		repo:        repo,
	}
}

func (sp *SubnetPolicer) Trusted(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	return sp.TrustedList.Contains(addr)
}

func (sp *SubnetPolicer) ReloadSubnets(ctx context.Context) error {
	if err := sp.TrustedList.Load(ctx, sp.repo); err != nil {
		return fmt.Errorf("update trusted list: %w", err)
	}
	return nil
}
