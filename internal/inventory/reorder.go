package inventory

import (
	"math"

	"envanter-backend/internal/models"
)

type ReorderStatus struct {
	Product          string  `json:"product"`
	AdjustedQuantity float64 `json:"adjusted_quantity"` // eldeki - tüketim
	Unit             string  `json:"unit"`
	ReorderThreshold float64 `json:"reorder_threshold"`
	BelowThreshold   bool    `json:"below_threshold"`
}

// EvaluateReorder: Her stok kalemi için düzeltilmiş miktarı ve eşik-altı bayrağını üretir.
// Tüketim haritasında olmayan ürün için tüketim 0 kabul edilir.
// Bayrak kesin küçüktür ile hesaplanır: tam eşikteki ürün işaretlenmez.
func EvaluateReorder(stock []models.StockItem, consumption map[string]float64) []ReorderStatus {
	statuses := make([]ReorderStatus, 0, len(stock))
	for _, item := range stock {
		adjusted := item.CurrentQuantity - consumption[item.Product]
		statuses = append(statuses, ReorderStatus{
			Product:          item.Product,
			AdjustedQuantity: adjusted,
			Unit:             item.Unit,
			ReorderThreshold: item.ReorderThreshold,
			BelowThreshold:   adjusted < item.ReorderThreshold,
		})
	}
	return statuses
}

// SuggestedQuantity: Eşik altındaki bir kalem için önerilen sipariş miktarı.
// max(1, round(eşik - düzeltilmiş)); fark <= 0 olsa bile asla 1'in altına inmez.
func SuggestedQuantity(s ReorderStatus) int {
	diff := math.Round(s.ReorderThreshold - s.AdjustedQuantity)
	if diff < 1 {
		return 1
	}
	return int(diff)
}
