package models

// SalesOrderLine is one line item of a SalesOrder. Lines are replaced as a
// whole whenever their parent order is rewritten by a sync page.
type SalesOrderLine struct {
	ID           int64  `gorm:"primaryKey"`
	SalesOrderID int64  `gorm:"not null;index"`
	Status       string `gorm:"type:varchar(30);not null"`
	ArticleCode  string `gorm:"type:varchar(100);not null"`
	ArticleName  string `gorm:"type:varchar(500)"`
	Quantity     int    `gorm:"not null"`
}

func (SalesOrderLine) TableName() string {
	return "sales_order_lines"
}
