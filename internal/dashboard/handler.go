package dashboard

import (
	"sort"

	"envanter-backend/internal/database"
	"envanter-backend/internal/inventory"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DishTotal struct {
	Dish         string  `json:"dish"`
	QuantitySold float64 `json:"quantity_sold"`
}

type ProductConsumption struct {
	Product     string  `json:"product"`
	Consumption float64 `json:"consumption"`
}

type SalesSummaryResponse struct {
	TotalSold    float64    `json:"total_sold"`    // toplam satılan porsiyon
	UniqueDishes int        `json:"unique_dishes"` // farklı yemek sayısı
	TopDish      *DishTotal `json:"top_dish"`      // en çok satılan (satış yoksa null)
}

type BelowThresholdPoint struct {
	Product          string  `json:"product"`
	AdjustedQuantity float64 `json:"adjusted_quantity"`
	ReorderThreshold float64 `json:"reorder_threshold"`
}

// Tüm dashboard görünümleri her istekte store'dan taze okunur.
// Hiç veri yoksa boş sonuç döner, hata değil.

// GET /api/dashboard/summary
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := dishTotals()
		if err != nil {
			return err
		}

		resp := SalesSummaryResponse{UniqueDishes: len(totals)}
		for i, t := range totals {
			resp.TotalSold += t.QuantitySold
			if i == 0 {
				top := t
				resp.TopDish = &top
			}
		}
		return c.JSON(resp)
	}
}

// GET /api/dashboard/top-dishes
// Yemek bazında satış toplamları, çoktan aza.
func TopDishesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := dishTotals()
		if err != nil {
			return err
		}
		return c.JSON(totals)
	}
}

// GET /api/dashboard/consumption
// Satışlardan türetilen malzeme tüketimi, çoktan aza.
func ConsumptionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sales []models.SaleRecord
		if err := database.DB.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar alınamadı")
		}
		var menu []models.MenuLine
		if err := database.DB.Find(&menu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}

		totals := inventory.CalculateConsumption(sales, menu)
		resp := make([]ProductConsumption, 0, len(totals))
		for product, total := range totals {
			resp = append(resp, ProductConsumption{Product: product, Consumption: total})
		}
		sort.Slice(resp, func(i, j int) bool {
			if resp[i].Consumption != resp[j].Consumption {
				return resp[i].Consumption > resp[j].Consumption
			}
			return resp[i].Product < resp[j].Product
		})
		return c.JSON(resp)
	}
}

// GET /api/dashboard/below-threshold
// Grafik beslemesi: sadece eşik altındaki ürünler.
func BelowThresholdHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var stock []models.StockItem
		if err := database.DB.Order("product ASC").Find(&stock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok listesi alınamadı")
		}
		var sales []models.SaleRecord
		if err := database.DB.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar alınamadı")
		}
		var menu []models.MenuLine
		if err := database.DB.Find(&menu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}

		statuses := inventory.EvaluateReorder(stock, inventory.CalculateConsumption(sales, menu))
		points := make([]BelowThresholdPoint, 0)
		for _, s := range statuses {
			if !s.BelowThreshold {
				continue
			}
			points = append(points, BelowThresholdPoint{
				Product:          s.Product,
				AdjustedQuantity: s.AdjustedQuantity,
				ReorderThreshold: s.ReorderThreshold,
			})
		}
		return c.JSON(points)
	}
}

func dishTotals() ([]DishTotal, error) {
	var totals []DishTotal
	err := database.DB.Model(&models.SaleRecord{}).
		Select("dish, SUM(quantity_sold) as quantity_sold").
		Group("dish").
		Order("quantity_sold DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Satış özeti alınamadı")
	}
	return totals, nil
}
