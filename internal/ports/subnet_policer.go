package ports

import (
	"context"
	"net/netip"
)

// SubnetHolder — интерфейс для управления подсетями.
type SubnetHolder interface {
	ReloadSubnets(ctx context.Context) error
}

// TrustPolicer — интерфейс для проверки IP по списку доверенных подсетей.
type TrustPolicer interface {
	Trusted(addr netip.Addr) bool
	SubnetHolder
}
