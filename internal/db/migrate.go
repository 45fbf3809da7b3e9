package db

import (
	"logiless/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.SalesOrder{},
		&models.SalesOrderLine{},
		&models.SyncState{},
	)
}
