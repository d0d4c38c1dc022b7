package models

import "time"

// SaleRecord: Günlük satış kaydı. (sale_date, dish) ikilisi tekildir;
// aynı anahtarla tekrar yükleme yapılırsa son satır kazanır (upsert).
type SaleRecord struct {
	ID           uint    `gorm:"primaryKey"`
	SaleDate     string  `gorm:"size:10;not null;uniqueIndex:idx_sales_date_dish"` // "2025-01-31"
	Dish         string  `gorm:"size:100;not null;uniqueIndex:idx_sales_date_dish"`
	QuantitySold float64 `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
