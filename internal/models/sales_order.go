package models

import (
	"time"
)

// SalesOrder mirrors one Logiless sales order header. All timestamp columns
// are stored in UTC; upstream sends them as +09:00 local time.
type SalesOrder struct {
	ID                    int64   `gorm:"primaryKey"`
	Code                  string  `gorm:"type:varchar(50);not null;index"`
	DocumentStatus        string  `gorm:"type:varchar(30);not null"`
	AllocationStatus      string  `gorm:"type:varchar(30);not null"`
	DeliveryStatus        string  `gorm:"type:varchar(30);not null"`
	IncomingPaymentStatus string  `gorm:"type:varchar(30);not null"`
	AuthorizationStatus   string  `gorm:"type:varchar(30);not null"`
	CustomerCode          *string `gorm:"type:varchar(100)"`
	PaymentMethod         string  `gorm:"type:varchar(100)"`
	DeliveryMethod        string  `gorm:"type:varchar(100)"`
	BuyerCountry          string  `gorm:"type:varchar(10)"`
	RecipientCountry      string  `gorm:"type:varchar(10)"`
	StoreID               int64   `gorm:"not null"`
	StoreName             string  `gorm:"type:varchar(200)"`
	DocumentDate          string  `gorm:"type:varchar(20)"`

	OrderedAt  time.Time  `gorm:"type:timestamptz;not null"`
	FinishedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt  time.Time  `gorm:"type:timestamptz;not null;index"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}
