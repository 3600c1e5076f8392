package ports

import (
	"context"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

// RecordStore — абстракция хранилища ключ/значение для записей failban.
// Запись читается и заменяется целиком.
type RecordStore interface {
	// Load возвращает содержимое записи или nil, nil, если записи нет.
	Load(ctx context.Context, key domain.RecordKey) ([]byte, error)
	// Save полностью заменяет содержимое записи.
	Save(ctx context.Context, key domain.RecordKey, data []byte) error
}
