package inventory

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ReorderSuggestion struct {
	Product           string  `json:"product"`
	AdjustedQuantity  float64 `json:"adjusted_quantity"`
	Unit              string  `json:"unit"`
	ReorderThreshold  float64 `json:"reorder_threshold"`
	SuggestedQuantity int     `json:"suggested_quantity"`
}

func flaggedSuggestions() ([]ReorderSuggestion, error) {
	statuses, err := currentReorderStatuses()
	if err != nil {
		return nil, err
	}

	suggestions := make([]ReorderSuggestion, 0)
	for _, s := range statuses {
		if !s.BelowThreshold {
			continue
		}
		suggestions = append(suggestions, ReorderSuggestion{
			Product:           s.Product,
			AdjustedQuantity:  s.AdjustedQuantity,
			Unit:              s.Unit,
			ReorderThreshold:  s.ReorderThreshold,
			SuggestedQuantity: SuggestedQuantity(s),
		})
	}
	return suggestions, nil
}

// GET /api/reorder
// Eşik altındaki kalemler ve önerilen sipariş miktarları.
func ReorderListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		suggestions, err := flaggedSuggestions()
		if err != nil {
			return err
		}
		return c.JSON(suggestions)
	}
}

// GET /api/reorder/export
// Tedarikçiye gönderilecek sipariş listesi: product,suggested_quantity (UTF-8 CSV).
// Bu çıktı sipariş yükleme ekranından olduğu gibi geri yüklenebilir.
func ExportReorderCSVHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		suggestions, err := flaggedSuggestions()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write([]string{"product", "suggested_quantity"})
		for _, s := range suggestions {
			_ = w.Write([]string{s.Product, strconv.Itoa(s.SuggestedQuantity)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products_to_reorder.csv"`)
		return c.Send(buf.Bytes())
	}
}
