package ports

import (
	"context"
	"time"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

// BanEngine — интерфейс учёта неудачных попыток и банов подсетей.
type BanEngine interface {
	RecordFailure(ctx context.Context, address string, now time.Time) (bool, error)
	IsBlocked(ctx context.Context, address string, now time.Time) (bool, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Ban, error)
	Unban(ctx context.Context, subnet domain.Subnet) error
}
