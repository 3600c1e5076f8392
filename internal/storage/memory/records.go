package memory

import (
	"context"
	"sync"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.RecordStore = (*RecordsDB)(nil)

// RecordsDB — in-memory хранилище записей failban (режим работы local).
type RecordsDB struct {
	mu      sync.RWMutex
	records map[domain.RecordKey][]byte
}

func NewRecordsDB() *RecordsDB {
	return &RecordsDB{records: make(map[domain.RecordKey][]byte)}
}

func (r *RecordsDB) Load(_ context.Context, key domain.RecordKey) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (r *RecordsDB) Save(_ context.Context, key domain.RecordKey, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = append([]byte(nil), data...)
	return nil
}
