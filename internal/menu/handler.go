package menu

import (
	"fmt"

	"envanter-backend/internal/audit"
	"envanter-backend/internal/database"
	"envanter-backend/internal/imports"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuLineResponse struct {
	ID              uint    `json:"id"`
	Dish            string  `json:"dish"`
	Product         string  `json:"product"`
	QuantityPerDish float64 `json:"quantity_per_dish"`
}

// POST /api/menu/upload
// Menü (reçete) tablosunu yüklenen CSV ile komple değiştirir.
func UploadMenuHandler() fiber.Handler {
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

		lines, err := imports.ParseMenuCSV(file)
		if err != nil {
			if schemaErr, ok := err.(*imports.SchemaError); ok {
				return fiber.NewError(fiber.StatusBadRequest, schemaErr.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Dosya işlenemedi: "+err.Error())
		}

		var beforeCount int64
		database.DB.Model(&models.MenuLine{}).Count(&beforeCount)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM menu_lines").Error; err != nil {
				return err
			}
			if len(lines) == 0 {
				return nil
			}
			return tx.Create(&lines).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü kaydedilemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "menu",
			Action:      models.AuditActionUpload,
			Description: fmt.Sprintf("Menü tablosu değiştirildi (%d reçete satırı)", len(lines)),
			Before:      map[string]any{"rows": beforeCount},
			After:       map[string]any{"rows": len(lines)},
		})

		return c.JSON(fiber.Map{
			"message": "Menü güncellendi",
			"rows":    len(lines),
		})
	}
}

// GET /api/menu
func ListMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lines []models.MenuLine
		if err := database.DB.Order("dish ASC, product ASC").Find(&lines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}

		resp := make([]MenuLineResponse, 0, len(lines))
		for _, line := range lines {
			resp = append(resp, MenuLineResponse{
				ID:              line.ID,
				Dish:            line.Dish,
				Product:         line.Product,
				QuantityPerDish: line.QuantityPerDish,
			})
		}
		return c.JSON(resp)
	}
}
