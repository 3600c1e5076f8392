package failban

import (
	"errors"
	"fmt"
	"time"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnet"
)

const (
	DefaultFailThreshold = 5
	DefaultFailureWindow = time.Hour
	DefaultBanDuration   = time.Hour
)

var ErrInvalidConfig = errors.New("invalid failban config")

// Config — параметры движка.
// FailureWindow и BanDuration независимы, по умолчанию оба равны часу.
type Config struct {
	FailThreshold int
	FailureWindow time.Duration
	BanDuration   time.Duration
	MaskLength    int
}

func DefaultConfig() Config {
	return Config{
		FailThreshold: DefaultFailThreshold,
		FailureWindow: DefaultFailureWindow,
		BanDuration:   DefaultBanDuration,
		MaskLength:    subnet.DefaultMaskLength,
	}
}

func ConfigFrom(cfg *config.Failban) Config {
	return Config{
		FailThreshold: cfg.FailThreshold,
		FailureWindow: cfg.FailureWindow,
		BanDuration:   cfg.BanDuration,
		MaskLength:    cfg.MaskLength,
	}
}

// Validate проверяет параметры. Окна считаются в целых секундах,
// поэтому отвергается всё, что меньше секунды или содержит дробную часть.
func (c Config) Validate() error {
	if c.FailThreshold < 1 {
		return fmt.Errorf("%w: fail threshold must be positive, got %d", ErrInvalidConfig, c.FailThreshold)
	}
	if c.FailureWindow < time.Second {
		return fmt.Errorf("%w: failure window must be at least 1s, got %s", ErrInvalidConfig, c.FailureWindow)
	}
	if c.BanDuration < time.Second {
		return fmt.Errorf("%w: ban duration must be at least 1s, got %s", ErrInvalidConfig, c.BanDuration)
	}
	if c.FailureWindow%time.Second != 0 {
		return fmt.Errorf("%w: failure window must be a whole number of seconds, got %s", ErrInvalidConfig, c.FailureWindow)
	}
	if c.BanDuration%time.Second != 0 {
		return fmt.Errorf("%w: ban duration must be a whole number of seconds, got %s", ErrInvalidConfig, c.BanDuration)
	}
	return nil
}
