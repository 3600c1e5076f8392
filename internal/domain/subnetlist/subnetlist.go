package subnetlist

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"sync"

	"go4.org/netipx"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var ErrInvalidCIDR = errors.New("invalid CIDR")

// SubnetList — in-memory копия списка подсетей одного типа.
// Набор подсетей хранится как netipx.IPSet и целиком заменяется при Load.
type SubnetList struct {
	listType domain.ListType
	mu       sync.RWMutex
	set      *netipx.IPSet
}

func NewSubnetList(listType domain.ListType) *SubnetList {
	return &SubnetList{listType: listType, set: &netipx.IPSet{}}
}

func (l *SubnetList) Contains(addr netip.Addr) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.set.Contains(addr.Unmap())
}

// Load перечитывает список из репозитория. При ошибке старый список остаётся в силе.
func (l *SubnetList) Load(ctx context.Context, repo ports.SubnetRepo) error {
	cidrs, err := repo.GetSubnetLists(ctx, l.listType)
	if err != nil {
		return fmt.Errorf("get %s subnets: %w", l.listType, err)
	}
	set, err := BuildSet(cidrs)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.set = set
	l.mu.Unlock()
	return nil
}

// ParseCIDR разбирает CIDR (допускается и одиночный адрес) и приводит его к адресу сети.
func ParseCIDR(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
		}
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
	}
	return p.Masked(), nil
}

func BuildSet(cidrs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, c := range cidrs {
		p, err := ParseCIDR(c)
		if err != nil {
			return nil, err
		}
		b.AddPrefix(p)
	}
	return b.IPSet()
}
