package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"logiless/internal/models"
)

// WarehouseRepository is the analytical-store capability the sync engine
// writes through. Statement parameters are bound by gorm; callers only hand
// over structured values.
type WarehouseRepository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// LatestSalesOrderUpdatedAt returns MAX(updated_at) over the order
	// table, or nil when the table is empty.
	LatestSalesOrderUpdatedAt(ctx context.Context) (*time.Time, error)

	DeleteSalesOrdersTx(ctx context.Context, tx *gorm.DB, ids []int64) error
	InsertSalesOrdersTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrder) error
	DeleteSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, orderIDs []int64) error
	InsertSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrderLine) error

	SaveSyncState(ctx context.Context, state *models.SyncState) error
	GetSyncState(ctx context.Context, scope string) (*models.SyncState, error)
	ListSyncStates(ctx context.Context) ([]models.SyncState, error)
}
