package inventory

import (
	"fmt"
	"mime/multipart"
	"strings"

	"envanter-backend/internal/audit"
	"envanter-backend/internal/database"
	"envanter-backend/internal/imports"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockItemResponse struct {
	ID               uint    `json:"id"`
	Product          string  `json:"product"`
	CurrentQuantity  float64 `json:"current_quantity"`
	Unit             string  `json:"unit"`
	ReorderThreshold float64 `json:"reorder_threshold"`
}

// Yardımcı: Yüklenen dosyayı aç, küçük harfe çevrilmiş dosya adıyla döndür.
func openUploadedFile(c *fiber.Ctx) (multipart.File, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
	}
	return file, strings.ToLower(fileHeader.Filename), nil
}

// Yardımcı: Ayrıştırma hatalarını kullanıcıya dönecek hataya çevirir.
// Şema uyuşmazlığı dahil hiçbir ayrıştırma hatası mutasyon sonrası oluşmaz.
func parseError(err error) error {
	if schemaErr, ok := err.(*imports.SchemaError); ok {
		return fiber.NewError(fiber.StatusBadRequest, schemaErr.Error())
	}
	return fiber.NewError(fiber.StatusBadRequest, "Dosya işlenemedi: "+err.Error())
}

// POST /api/stock/upload
// Stok tablosunu yüklenen dosyayla komple değiştirir (satır bazlı merge yok).
// Tek transaction: yükleme başarısız olursa eski tablo olduğu gibi kalır.
func UploadStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, filename, err := openUploadedFile(c)
		if err != nil {
			return err
		}
		defer file.Close()

		var items []models.StockItem
		if strings.HasSuffix(filename, ".xlsx") {
			items, err = imports.ParseStockXLSX(file)
		} else {
			items, err = imports.ParseStockCSV(file)
		}
		if err != nil {
			return parseError(err)
		}

		var beforeCount int64
		database.DB.Model(&models.StockItem{}).Count(&beforeCount)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM stock_items").Error; err != nil {
				return err
			}
			if len(items) == 0 {
				return nil
			}
			return tx.Create(&items).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydedilemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "stock",
			Action:      models.AuditActionUpload,
			Description: fmt.Sprintf("Stok tablosu değiştirildi (%d kalem)", len(items)),
			Before:      map[string]any{"rows": beforeCount},
			After:       map[string]any{"rows": len(items)},
		})

		return c.JSON(fiber.Map{
			"message": "Stok listesi güncellendi",
			"rows":    len(items),
		})
	}
}

// GET /api/stock
func ListStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.StockItem
		if err := database.DB.Order("product ASC").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok listesi alınamadı")
		}

		resp := make([]StockItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, StockItemResponse{
				ID:               item.ID,
				Product:          item.Product,
				CurrentQuantity:  item.CurrentQuantity,
				Unit:             item.Unit,
				ReorderThreshold: item.ReorderThreshold,
			})
		}
		return c.JSON(resp)
	}
}

// GET /api/stock/status
// Düzeltilmiş miktar ve eşik-altı bayrağıyla güncel görünüm.
// Kalıcı değildir; her istekte store'dan taze okunarak yeniden hesaplanır.
func StockStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		statuses, err := currentReorderStatuses()
		if err != nil {
			return err
		}
		return c.JSON(statuses)
	}
}

// DELETE /api/stock
func ResetStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var beforeCount int64
		database.DB.Model(&models.StockItem{}).Count(&beforeCount)

		if err := database.DB.Exec("DELETE FROM stock_items").Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok silinemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "stock",
			Action:      models.AuditActionReset,
			Description: "Tüm stok kayıtları silindi",
			Before:      map[string]any{"rows": beforeCount},
		})

		return c.JSON(fiber.Map{"message": "Tüm stok kayıtları silindi"})
	}
}

// currentReorderStatuses: Store'un o anki halinden türetilmiş görünüm.
// Boş tablolar hata değildir; boş sonuç döner.
func currentReorderStatuses() ([]ReorderStatus, error) {
	var stock []models.StockItem
	if err := database.DB.Order("product ASC").Find(&stock).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Stok listesi alınamadı")
	}

	var sales []models.SaleRecord
	if err := database.DB.Find(&sales).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Satışlar alınamadı")
	}

	var menu []models.MenuLine
	if err := database.DB.Find(&menu).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
	}

	return EvaluateReorder(stock, CalculateConsumption(sales, menu)), nil
}
