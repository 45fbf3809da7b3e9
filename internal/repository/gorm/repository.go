package gormrepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"logiless/internal/models"
)

const insertBatchSize = 500

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) LatestSalesOrderUpdatedAt(ctx context.Context) (*time.Time, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var ts sql.NullTime
	err := s.db.WithContext(ctx).
		Model(&models.SalesOrder{}).
		Select("MAX(updated_at)").
		Scan(&ts).Error
	if err != nil {
		return nil, err
	}
	if !ts.Valid {
		return nil, nil
	}
	t := ts.Time
	return &t, nil
}

func (s *Store) DeleteSalesOrdersTx(ctx context.Context, tx *gorm.DB, ids []int64) error {
	if tx == nil || len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.SalesOrder{}).Error
}

func (s *Store) InsertSalesOrdersTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrder) error {
	if tx == nil || len(rows) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

func (s *Store) DeleteSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, orderIDs []int64) error {
	if tx == nil || len(orderIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Where("sales_order_id IN ?", orderIDs).
		Delete(&models.SalesOrderLine{}).Error
}

func (s *Store) InsertSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrderLine) error {
	if tx == nil || len(rows) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

func (s *Store) SaveSyncState(ctx context.Context, state *models.SyncState) error {
	if s == nil || s.db == nil || state == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"watermark_ts",
			"last_success_at",
			"last_attempt_at",
			"last_error",
			"stats_json",
		}),
	}).Create(state).Error
}

func (s *Store) GetSyncState(ctx context.Context, scope string) (*models.SyncState, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var state models.SyncState
	err := s.db.WithContext(ctx).
		Where("scope = ?", scope).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Store) ListSyncStates(ctx context.Context) ([]models.SyncState, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var states []models.SyncState
	if err := s.db.WithContext(ctx).
		Order("scope asc").
		Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
