package imports

import (
	"log"
	"strconv"
	"strings"

	"envanter-backend/internal/models"
)

// OrderLine: Tek seferlik sipariş yükleme satırı. Kalıcı değildir;
// sadece teslim alma (reconciliation) oturumu boyunca bellekte yaşar.
type OrderLine struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

// Dosya türlerinin kolon sözleşmeleri. Kolon adları birebir eşleşmeli
// (büyük/küçük harf ve kenar boşlukları tolere edilir).
var (
	stockColumns = []string{"product", "current_quantity", "unit", "reorder_threshold"}
	menuColumns  = []string{"dish", "product", "quantity_per_dish"}
	salesColumns = []string{"date", "dish", "quantity_sold"}
)

// Sipariş dosyasında miktar kolonu için kabul edilen alternatif ad.
// Yeniden sipariş export'u (product, suggested_quantity) doğrudan geri yüklenebilsin diye.
const orderQuantityAlias = "suggested_quantity"

// colIndex: başlık satırından normalize edilmiş kolon adı -> indeks haritası üretir.
func colIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func missingColumns(idx map[string]int, required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func stockFromRows(header []string, rows [][]string) ([]models.StockItem, error) {
	idx := colIndex(header)
	if missing := missingColumns(idx, stockColumns); len(missing) > 0 {
		return nil, &SchemaError{Kind: "stock", Missing: missing}
	}

	var items []models.StockItem
	for n, row := range rows {
		product := cell(row, idx["product"])
		if product == "" {
			continue
		}
		qty, err := strconv.ParseFloat(cell(row, idx["current_quantity"]), 64)
		if err != nil {
			log.Printf("WARN: stock satır %d atlandı, current_quantity sayı değil: %q", n+2, cell(row, idx["current_quantity"]))
			continue
		}
		threshold, err := strconv.ParseFloat(cell(row, idx["reorder_threshold"]), 64)
		if err != nil {
			log.Printf("WARN: stock satır %d atlandı, reorder_threshold sayı değil: %q", n+2, cell(row, idx["reorder_threshold"]))
			continue
		}
		items = append(items, models.StockItem{
			Product:          product,
			CurrentQuantity:  qty,
			Unit:             cell(row, idx["unit"]),
			ReorderThreshold: threshold,
		})
	}
	return items, nil
}

func menuFromRows(header []string, rows [][]string) ([]models.MenuLine, error) {
	idx := colIndex(header)
	if missing := missingColumns(idx, menuColumns); len(missing) > 0 {
		return nil, &SchemaError{Kind: "menu", Missing: missing}
	}

	var lines []models.MenuLine
	for n, row := range rows {
		dish := cell(row, idx["dish"])
		product := cell(row, idx["product"])
		if dish == "" || product == "" {
			continue
		}
		qty, err := strconv.ParseFloat(cell(row, idx["quantity_per_dish"]), 64)
		if err != nil {
			log.Printf("WARN: menu satır %d atlandı, quantity_per_dish sayı değil: %q", n+2, cell(row, idx["quantity_per_dish"]))
			continue
		}
		lines = append(lines, models.MenuLine{
			Dish:            dish,
			Product:         product,
			QuantityPerDish: qty,
		})
	}
	return lines, nil
}

func salesFromRows(header []string, rows [][]string) ([]models.SaleRecord, error) {
	idx := colIndex(header)
	if missing := missingColumns(idx, salesColumns); len(missing) > 0 {
		return nil, &SchemaError{Kind: "sales", Missing: missing}
	}

	var records []models.SaleRecord
	for n, row := range rows {
		date := cell(row, idx["date"])
		dish := cell(row, idx["dish"])
		if date == "" || dish == "" {
			continue
		}
		qty, err := strconv.ParseFloat(cell(row, idx["quantity_sold"]), 64)
		if err != nil {
			log.Printf("WARN: sales satır %d atlandı, quantity_sold sayı değil: %q", n+2, cell(row, idx["quantity_sold"]))
			continue
		}
		records = append(records, models.SaleRecord{
			SaleDate:     date,
			Dish:         dish,
			QuantitySold: qty,
		})
	}
	return records, nil
}

func ordersFromRows(header []string, rows [][]string) ([]OrderLine, error) {
	idx := colIndex(header)

	// "quantity" yoksa "suggested_quantity" kabul edilir ve normalize edilir
	qtyCol := "quantity"
	if _, ok := idx[qtyCol]; !ok {
		if _, ok := idx[orderQuantityAlias]; ok {
			qtyCol = orderQuantityAlias
		}
	}

	var missing []string
	if _, ok := idx["product"]; !ok {
		missing = append(missing, "product")
	}
	if _, ok := idx[qtyCol]; !ok {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Kind: "orders", Missing: missing}
	}

	var lines []OrderLine
	for n, row := range rows {
		product := cell(row, idx["product"])
		if product == "" {
			continue
		}
		qty, err := strconv.ParseFloat(cell(row, idx[qtyCol]), 64)
		if err != nil {
			log.Printf("WARN: orders satır %d atlandı, miktar sayı değil: %q", n+2, cell(row, idx[qtyCol]))
			continue
		}
		lines = append(lines, OrderLine{Product: product, Quantity: qty})
	}
	return lines, nil
}
