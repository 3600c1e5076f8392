package subnetupdatepublisher

import (
	"context"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.SubnetUpdatesPublisher = (*LocalSubnetUpdatesPublisher)(nil)

// LocalSubnetUpdatesPublisher — публикатор для режимов local и embedded:
// список доверенных подсетей живёт в этом же процессе, поэтому
// перечитываем его сразу, без брокера.
type LocalSubnetUpdatesPublisher struct {
	holder ports.SubnetHolder
}

func NewLocalSubnetUpdatesPublisher(holder ports.SubnetHolder) *LocalSubnetUpdatesPublisher {
	return &LocalSubnetUpdatesPublisher{holder: holder}
}

func (p *LocalSubnetUpdatesPublisher) PublishSubnetUpdated(ctx context.Context) error {
	return p.holder.ReloadSubnets(ctx)
}
