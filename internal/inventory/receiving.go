package inventory

import (
	"log"

	"envanter-backend/internal/imports"
	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

type ReceiveResult struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	Applied  bool    `json:"applied"`
	Error    string  `json:"error,omitempty"`
}

// ApplyReceivedOrders: Onaylanan sipariş satırlarını stok miktarlarına ekler.
// Satır satır, sırayla uygulanır; bir satır başarısız olursa önceki satırlar
// geri alınmaz (best-effort). Onaylanmamış satırlar stoğa dokunmaz.
func ApplyReceivedOrders(db *gorm.DB, lines []imports.OrderLine, confirmed map[string]bool) []ReceiveResult {
	results := make([]ReceiveResult, 0, len(lines))
	for _, line := range lines {
		result := ReceiveResult{Product: line.Product, Quantity: line.Quantity}

		if !confirmed[line.Product] {
			results = append(results, result)
			continue
		}

		res := db.Model(&models.StockItem{}).
			Where("product = ?", line.Product).
			UpdateColumn("current_quantity", gorm.Expr("current_quantity + ?", line.Quantity))

		if res.Error != nil {
			log.Printf("Stok güncellenemedi (%s): %v", line.Product, res.Error)
			result.Error = "Stok güncellenemedi"
		} else if res.RowsAffected == 0 {
			result.Error = "Ürün stokta kayıtlı değil"
		} else {
			result.Applied = true
		}
		results = append(results, result)
	}
	return results
}
