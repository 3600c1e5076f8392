package memory

import "errors"

// ErrEmptyCIDR обозначает пустое значение CIDR.
var ErrEmptyCIDR = errors.New("cidr is empty")
