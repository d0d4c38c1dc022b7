package inventory

import (
	"fmt"
	"strings"

	"envanter-backend/internal/audit"
	"envanter-backend/internal/database"
	"envanter-backend/internal/imports"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Sipariş batch'i kalıcı değildir: yükleme satırları client'a döner, client
// onaylanan satırlarla teslim alma isteğini yapar. Ara durum persist edilmez.

type ReceiveOrderLine struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	Received bool    `json:"received"` // checklist'te işaretlendi mi
}

type ReceiveOrdersRequest struct {
	Lines []ReceiveOrderLine `json:"lines"`
}

// POST /api/orders/upload
// Sipariş dosyasını ayrıştırıp checklist için satırları döner; stoğa dokunmaz.
func UploadOrderListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, filename, err := openUploadedFile(c)
		if err != nil {
			return err
		}
		defer file.Close()

		var lines []imports.OrderLine
		if strings.HasSuffix(filename, ".xlsx") {
			lines, err = imports.ParseOrdersXLSX(file)
		} else {
			lines, err = imports.ParseOrdersCSV(file)
		}
		if err != nil {
			return parseError(err)
		}

		return c.JSON(fiber.Map{
			"message": "Sipariş listesi yüklendi",
			"lines":   lines,
		})
	}
}

// POST /api/orders/receive
// Checklist'te onaylanan satırları stok miktarlarına ekler.
// Satır bazlı best-effort: başarısız bir satır öncekileri geri almaz.
func ReceiveOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReceiveOrdersRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		lines := make([]imports.OrderLine, 0, len(body.Lines))
		confirmed := make(map[string]bool)
		for _, l := range body.Lines {
			product := strings.TrimSpace(l.Product)
			if product == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Her satırda product zorunlu")
			}
			lines = append(lines, imports.OrderLine{Product: product, Quantity: l.Quantity})
			if l.Received {
				confirmed[product] = true
			}
		}

		results := ApplyReceivedOrders(database.DB, lines, confirmed)

		applied := 0
		for _, r := range results {
			if r.Applied {
				applied++
			}
		}

		if applied > 0 {
			_ = audit.WriteLog(audit.LogOptions{
				EntityType:  "order",
				Action:      models.AuditActionReconcile,
				Description: fmt.Sprintf("Teslim alınan %d sipariş satırı stoğa işlendi", applied),
				After:       results,
			})
		}

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("%d satır stoğa işlendi", applied),
			"results": results,
		})
	}
}
