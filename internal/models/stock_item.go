package models

import "time"

type StockItem struct {
	ID               uint    `gorm:"primaryKey"`
	Product          string  `gorm:"size:100;not null;uniqueIndex"`
	CurrentQuantity  float64 `gorm:"not null"`          // eldeki miktar
	Unit             string  `gorm:"size:20;not null"`  // kg, lt, adet vs.
	ReorderThreshold float64 `gorm:"not null"`          // yeniden sipariş eşiği
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
