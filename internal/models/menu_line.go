package models

import "time"

// MenuLine: Bir yemeğin reçetesindeki tek malzeme satırı.
// Aynı yemek birden fazla ürüne fan-out yapabilir, (dish, product) ikilisi tekildir.
// Referans verilen ürünün stokta var olması zorunlu değil (join anahtarı, foreign key değil).
type MenuLine struct {
	ID              uint    `gorm:"primaryKey"`
	Dish            string  `gorm:"size:100;not null;uniqueIndex:idx_menu_dish_product"`
	Product         string  `gorm:"size:100;not null;uniqueIndex:idx_menu_dish_product"`
	QuantityPerDish float64 `gorm:"not null"` // bir porsiyon için gereken miktar
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
