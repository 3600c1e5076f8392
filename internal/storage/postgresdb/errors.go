package postgresdb

import "errors"

var (
	// ErrEmptyCIDR обозначает пустое значение CIDR.
	ErrEmptyCIDR = errors.New("cidr is empty")
	// ErrEmptyDSN — не задан ни dsn, ни параметры подключения.
	ErrEmptyDSN = errors.New("empty DSN")
)
