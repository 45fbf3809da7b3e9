package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"logiless/internal/models"
)

// stubRepo is an in-memory WarehouseRepository that records every write so
// tests can assert on call patterns and final row sets.
type stubRepo struct {
	latest *time.Time

	orders map[int64]models.SalesOrder
	lines  map[int64]models.SalesOrderLine

	orderDeletes [][]int64
	lineDeletes  [][]int64
	orderInserts int
	lineInserts  int

	states []models.SyncState
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		orders: map[int64]models.SalesOrder{},
		lines:  map[int64]models.SalesOrderLine{},
	}
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (s *stubRepo) LatestSalesOrderUpdatedAt(ctx context.Context) (*time.Time, error) {
	return s.latest, nil
}

func (s *stubRepo) DeleteSalesOrdersTx(ctx context.Context, tx *gorm.DB, ids []int64) error {
	s.orderDeletes = append(s.orderDeletes, ids)
	for _, id := range ids {
		delete(s.orders, id)
	}
	return nil
}

func (s *stubRepo) InsertSalesOrdersTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrder) error {
	s.orderInserts++
	for _, row := range rows {
		s.orders[row.ID] = row
	}
	return nil
}

func (s *stubRepo) DeleteSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, orderIDs []int64) error {
	s.lineDeletes = append(s.lineDeletes, orderIDs)
	for id, line := range s.lines {
		for _, orderID := range orderIDs {
			if line.SalesOrderID == orderID {
				delete(s.lines, id)
			}
		}
	}
	return nil
}

func (s *stubRepo) InsertSalesOrderLinesTx(ctx context.Context, tx *gorm.DB, rows []models.SalesOrderLine) error {
	s.lineInserts++
	for _, row := range rows {
		s.lines[row.ID] = row
	}
	return nil
}

func (s *stubRepo) SaveSyncState(ctx context.Context, state *models.SyncState) error {
	s.states = append(s.states, *state)
	return nil
}

func (s *stubRepo) GetSyncState(ctx context.Context, scope string) (*models.SyncState, error) {
	for i := len(s.states) - 1; i >= 0; i-- {
		if s.states[i].Scope == scope {
			state := s.states[i]
			return &state, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListSyncStates(ctx context.Context) ([]models.SyncState, error) {
	return s.states, nil
}
