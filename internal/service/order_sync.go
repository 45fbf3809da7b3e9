package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"logiless/internal/client/logiless"
	"logiless/internal/models"
	"logiless/internal/repository"
)

const syncScope = "sales_orders"

// ErrNoWatermark is defensive; the configured fallback date makes it
// unreachable in normal operation.
var ErrNoWatermark = errors.New("sync: no resolvable watermark")

// OrderFetcher is the slice of the Logiless client the sync engine needs.
type OrderFetcher interface {
	GetSalesOrders(ctx context.Context, since time.Time, page int) (*logiless.SalesOrderPage, error)
}

type OrderSyncService struct {
	Store  repository.WarehouseRepository
	Client OrderFetcher
	Logger *zap.Logger

	// FallbackSince ("YYYY-MM-DD") seeds the watermark when the order
	// table is empty and no explicit since date was given.
	FallbackSince string
}

type SyncOptions struct {
	// SinceDate, when set ("YYYY-MM-DD"), overrides the computed
	// watermark with midnight JST of that day.
	SinceDate string
}

type SyncResult struct {
	Watermark time.Time `json:"watermark"`
	Pages     int       `json:"pages"`
	Orders    int       `json:"orders"`
	Lines     int       `json:"lines"`
}

// Sync pulls every page of orders updated inside the watermark's window and
// rewrites them in the warehouse via delete-then-insert. Each page is one
// transaction; any error aborts the run immediately. Retry policy belongs to
// the caller's scheduler, not here.
func (s *OrderSyncService) Sync(ctx context.Context, opts SyncOptions) (SyncResult, error) {
	watermark, err := s.resolveWatermark(ctx, opts.SinceDate)
	if err != nil {
		s.writeSyncError(ctx, nil, err)
		return SyncResult{}, err
	}

	result := SyncResult{Watermark: watermark}
	hasNext := true
	for page := 1; hasNext; page++ {
		res, err := s.Client.GetSalesOrders(ctx, watermark, page)
		if err != nil {
			s.writeSyncError(ctx, &watermark, err)
			return result, err
		}

		orders, lines, err := mapSalesOrders(res.Data)
		if err != nil {
			s.writeSyncError(ctx, &watermark, err)
			return result, err
		}

		if len(orders) > 0 {
			ids := make([]int64, len(orders))
			for i, o := range orders {
				ids[i] = o.ID
			}
			err = s.Store.InTx(ctx, func(tx *gorm.DB) error {
				if err := s.Store.DeleteSalesOrdersTx(ctx, tx, ids); err != nil {
					return err
				}
				if err := s.Store.InsertSalesOrdersTx(ctx, tx, orders); err != nil {
					return err
				}
				if len(lines) == 0 {
					return nil
				}
				if err := s.Store.DeleteSalesOrderLinesTx(ctx, tx, ids); err != nil {
					return err
				}
				return s.Store.InsertSalesOrderLinesTx(ctx, tx, lines)
			})
			if err != nil {
				s.writeSyncError(ctx, &watermark, err)
				return result, err
			}
		}

		result.Pages++
		result.Orders += len(orders)
		result.Lines += len(lines)

		if s.Logger != nil {
			s.Logger.Debug("sales order page synced",
				zap.Int("page", page),
				zap.Int("orders", len(orders)),
				zap.Int("lines", len(lines)),
				zap.Bool("has_next", res.HasNext),
			)
		}

		hasNext = res.HasNext
	}

	s.writeSyncSuccess(ctx, watermark, result)
	return result, nil
}

// resolveWatermark picks the window start: explicit since date, then the
// newest updated_at already in the warehouse, then the fallback epoch.
func (s *OrderSyncService) resolveWatermark(ctx context.Context, sinceDate string) (time.Time, error) {
	if sinceDate != "" {
		return logiless.ParseTokyoDate(sinceDate)
	}

	latest, err := s.Store.LatestSalesOrderUpdatedAt(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if latest != nil {
		return *latest, nil
	}

	if s.FallbackSince != "" {
		if t, err := logiless.ParseTokyoDate(s.FallbackSince); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrNoWatermark
}

func mapSalesOrders(items []logiless.SalesOrder) ([]models.SalesOrder, []models.SalesOrderLine, error) {
	orders := make([]models.SalesOrder, 0, len(items))
	var lines []models.SalesOrderLine

	for _, item := range items {
		orderedAt, err := logiless.ParseTokyo(item.OrderedAt)
		if err != nil {
			return nil, nil, err
		}
		createdAt, err := logiless.ParseTokyo(item.CreatedAt)
		if err != nil {
			return nil, nil, err
		}
		updatedAt, err := logiless.ParseTokyo(item.UpdatedAt)
		if err != nil {
			return nil, nil, err
		}
		var finishedAt *time.Time
		if item.FinishedAt != nil && *item.FinishedAt != "" {
			t, err := logiless.ParseTokyo(*item.FinishedAt)
			if err != nil {
				return nil, nil, err
			}
			finishedAt = &t
		}

		orders = append(orders, models.SalesOrder{
			ID:                    item.ID,
			Code:                  item.Code,
			DocumentStatus:        string(item.DocumentStatus),
			AllocationStatus:      string(item.AllocationStatus),
			DeliveryStatus:        string(item.DeliveryStatus),
			IncomingPaymentStatus: string(item.IncomingPaymentStatus),
			AuthorizationStatus:   string(item.AuthorizationStatus),
			CustomerCode:          item.CustomerCode,
			PaymentMethod:         item.PaymentMethod,
			DeliveryMethod:        item.DeliveryMethod,
			BuyerCountry:          item.BuyerCountry,
			RecipientCountry:      item.RecipientCountry,
			StoreID:               item.Store.ID,
			StoreName:             item.Store.Name,
			DocumentDate:          item.DocumentDate,
			OrderedAt:             orderedAt,
			FinishedAt:            finishedAt,
			CreatedAt:             createdAt,
			UpdatedAt:             updatedAt,
		})

		for _, line := range item.Lines {
			lines = append(lines, models.SalesOrderLine{
				ID:           line.ID,
				SalesOrderID: item.ID,
				Status:       string(line.Status),
				ArticleCode:  line.ArticleCode,
				ArticleName:  line.ArticleName,
				Quantity:     line.Quantity,
			})
		}
	}
	return orders, lines, nil
}

func (s *OrderSyncService) writeSyncSuccess(ctx context.Context, watermark time.Time, result SyncResult) {
	now := time.Now().UTC()
	state := &models.SyncState{
		Scope:         syncScope,
		WatermarkTS:   &watermark,
		LastAttemptAt: &now,
		LastSuccessAt: &now,
		StatsJSON:     statsJSON(result),
	}
	if err := s.Store.SaveSyncState(ctx, state); err != nil && s.Logger != nil {
		s.Logger.Warn("save sync state failed", zap.Error(err))
	}
}

func (s *OrderSyncService) writeSyncError(ctx context.Context, watermark *time.Time, cause error) {
	now := time.Now().UTC()
	msg := cause.Error()
	state := &models.SyncState{
		Scope:         syncScope,
		WatermarkTS:   watermark,
		LastAttemptAt: &now,
		LastError:     &msg,
	}
	if err := s.Store.SaveSyncState(ctx, state); err != nil && s.Logger != nil {
		s.Logger.Warn("save sync state failed", zap.Error(err))
	}
}

func statsJSON(result SyncResult) datatypes.JSON {
	raw, err := json.Marshal(map[string]int{
		"pages":  result.Pages,
		"orders": result.Orders,
		"lines":  result.Lines,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
