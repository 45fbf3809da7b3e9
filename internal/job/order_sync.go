package job

import (
	"context"

	"logiless/internal/service"
)

// OrderSyncPerformer adapts the sync engine to the performer capability.
type OrderSyncPerformer struct {
	Service *service.OrderSyncService
}

func (p *OrderSyncPerformer) Name() string {
	return "logiless_order_sync"
}

func (p *OrderSyncPerformer) Perform(ctx context.Context, params Params) (any, error) {
	result, err := p.Service.Sync(ctx, service.SyncOptions{SinceDate: params.SinceDate})
	if err != nil {
		return nil, err
	}
	return result, nil
}
