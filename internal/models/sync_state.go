package models

import (
	"time"

	"gorm.io/datatypes"
)

// SyncState is per-scope bookkeeping for sync runs. It is observability
// only: the watermark used by a run is always recomputed from the order
// table, never read back from here.
type SyncState struct {
	Scope         string         `gorm:"primaryKey;type:text"`
	WatermarkTS   *time.Time     `gorm:"type:timestamptz"`
	LastSuccessAt *time.Time     `gorm:"type:timestamptz"`
	LastAttemptAt *time.Time     `gorm:"type:timestamptz"`
	LastError     *string        `gorm:"type:text"`
	StatsJSON     datatypes.JSON `gorm:"type:jsonb"`
}

func (SyncState) TableName() string {
	return "sync_state"
}
