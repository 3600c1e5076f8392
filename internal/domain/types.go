package domain

import (
	"errors"
	"time"
)

// ListType представляет тип списка подсетей.
type ListType string

const (
	// Trusted — подсети, адреса которых никогда не учитываются и не блокируются (аналог ignoreip в fail2ban).
	Trusted ListType = "trusted"
)

// RecordKey — имя записи в хранилище ключ/значение.
type RecordKey string

const (
	// FailedAttemptsKey — журнал неудачных попыток: подсеть -> метки времени (unix, сек).
	FailedAttemptsKey RecordKey = "failed_attempts"
	// BlockedSubnetsKey — таблица банов: подсеть -> время окончания бана (unix, сек).
	BlockedSubnetsKey RecordKey = "blocked_subnets"
)

// Subnet — каноническое имя подсети вида "a.b.c.0/24".
type Subnet string

func (s Subnet) String() string { return string(s) }

// FailureLog — журнал неудачных попыток входа по подсетям.
// Метки времени хранятся в порядке добавления (он же хронологический).
type FailureLog map[Subnet][]int64

// BanTable — активные (и ещё не удалённые просроченные) баны по подсетям.
type BanTable map[Subnet]int64

// Ban — запись об активном бане подсети.
type Ban struct {
	Subnet    Subnet
	ExpiresAt time.Time
}

// Remaining возвращает оставшееся время бана относительно now.
func (b Ban) Remaining(now time.Time) time.Duration {
	if d := b.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

var (
	// ErrStoreUnavailable — хранилище недоступно или вернуло некорректные данные.
	// Ошибка всегда пробрасывается вызывающему: молча пропустить учёт попытки
	// или проверку бана нельзя.
	ErrStoreUnavailable = errors.New("failban store unavailable")
	// ErrInvalidSubnet — строка не является каноническим именем подсети.
	ErrInvalidSubnet = errors.New("invalid subnet")
	// ErrSubnetBlocked — попытка входа отклонена, подсеть временно заблокирована.
	// Текст общий: без счётчиков и без времени разблокировки.
	ErrSubnetBlocked = errors.New("your subnet is temporarily blocked due to repeated failed logins")
)
