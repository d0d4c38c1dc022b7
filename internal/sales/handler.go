package sales

import (
	"fmt"

	"envanter-backend/internal/audit"
	"envanter-backend/internal/database"
	"envanter-backend/internal/imports"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRecordResponse struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	Dish         string  `json:"dish"`
	QuantitySold float64 `json:"quantity_sold"`
}

// UpsertSales: Satış kayıtlarını ekle-sonra-tekilleştir semantiğiyle işler.
// (sale_date, dish) çakışmasında son gelen satır kazanır; "son" = dosya satır
// sırası, yüklemeler arasında ise sonraki yükleme. Satırlar sırayla upsert
// edildiği için aynı yüklemenin birebir tekrarı idempotenttir.
func UpsertSales(db *gorm.DB, records []models.SaleRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sale_date"}, {Name: "dish"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity_sold", "updated_at"}),
			}).Create(&records[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// POST /api/sales/upload
func UploadSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}
		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		records, err := imports.ParseSalesCSV(file)
		if err != nil {
			if schemaErr, ok := err.(*imports.SchemaError); ok {
				return fiber.NewError(fiber.StatusBadRequest, schemaErr.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Dosya işlenemedi: "+err.Error())
		}

		if err := UpsertSales(database.DB, records); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar kaydedilemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "sales",
			Action:      models.AuditActionUpload,
			Description: fmt.Sprintf("%d satış satırı yüklendi", len(records)),
			After:       map[string]any{"rows": len(records)},
		})

		return c.JSON(fiber.Map{
			"message": "Satışlar veritabanına eklendi",
			"rows":    len(records),
		})
	}
}

// GET /api/sales
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.SaleRecord
		if err := database.DB.Order("sale_date ASC, dish ASC").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar alınamadı")
		}

		resp := make([]SaleRecordResponse, 0, len(records))
		for _, r := range records {
			resp = append(resp, SaleRecordResponse{
				ID:           r.ID,
				Date:         r.SaleDate,
				Dish:         r.Dish,
				QuantitySold: r.QuantitySold,
			})
		}
		return c.JSON(resp)
	}
}

// DELETE /api/sales
// Satış tablosunu komple temizler (test veya toplu güncelleme için).
func ResetSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var beforeCount int64
		database.DB.Model(&models.SaleRecord{}).Count(&beforeCount)

		if err := database.DB.Exec("DELETE FROM sale_records").Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar silinemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "sales",
			Action:      models.AuditActionReset,
			Description: "Tüm satışlar silindi",
			Before:      map[string]any{"rows": beforeCount},
		})

		return c.JSON(fiber.Map{"message": "Tüm satışlar silindi"})
	}
}
