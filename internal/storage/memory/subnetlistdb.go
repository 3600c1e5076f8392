package memory

import (
	"context"
	"sync"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.SubnetRepo = (*SubnetListDB)(nil)

// SubnetListDB — in-memory репозиторий списков подсетей.
// Порядок добавления сохраняется, дубликаты игнорируются.
type SubnetListDB struct {
	mu    sync.RWMutex
	lists map[domain.ListType][]string
}

func NewSubnetListDB() *SubnetListDB {
	return &SubnetListDB{lists: make(map[domain.ListType][]string)}
}

func (s *SubnetListDB) GetSubnetLists(_ context.Context, listType domain.ListType) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.lists[listType]...), nil
}

func (s *SubnetListDB) SaveSubnetList(_ context.Context, listType domain.ListType, cidrs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cidr := range cidrs {
		s.addLocked(listType, cidr)
	}
	return nil
}

func (s *SubnetListDB) ClearSubnetList(_ context.Context, listType domain.ListType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lists, listType)
	return nil
}

func (s *SubnetListDB) AddCIDRToSubnetList(_ context.Context, listType domain.ListType, cidr string) error {
	if cidr == "" {
		return ErrEmptyCIDR
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLocked(listType, cidr)
	return nil
}

func (s *SubnetListDB) RemoveCIDRFromSubnetList(_ context.Context, listType domain.ListType, cidr string) error {
	if cidr == "" {
		return ErrEmptyCIDR
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[listType]
	out := make([]string, 0, len(list))
	for _, c := range list {
		if c != cidr {
			out = append(out, c)
		}
	}
	s.lists[listType] = out
	return nil
}

func (s *SubnetListDB) addLocked(listType domain.ListType, cidr string) {
	for _, c := range s.lists[listType] {
		if c == cidr {
			return
		}
	}
	s.lists[listType] = append(s.lists[listType], cidr)
}
