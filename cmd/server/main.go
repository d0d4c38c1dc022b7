package main

import (
	"log"
	"strings"

	"envanter-backend/internal/audit"
	"envanter-backend/internal/auth"
	"envanter-backend/internal/config"
	"envanter-backend/internal/dashboard"
	"envanter-backend/internal/database"
	"envanter-backend/internal/inventory"
	"envanter-backend/internal/menu"
	"envanter-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Use(recover.New())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Stok
	protected.Get("/stock", inventory.ListStockHandler())
	protected.Post("/stock/upload", inventory.UploadStockHandler())
	protected.Get("/stock/status", inventory.StockStatusHandler())
	protected.Delete("/stock", inventory.ResetStockHandler())

	// Yeniden sipariş
	protected.Get("/reorder", inventory.ReorderListHandler())
	protected.Get("/reorder/export", inventory.ExportReorderCSVHandler())

	// Sipariş teslim alma
	protected.Post("/orders/upload", inventory.UploadOrderListHandler())
	protected.Post("/orders/receive", inventory.ReceiveOrdersHandler())

	// Menü (reçeteler)
	protected.Get("/menu", menu.ListMenuHandler())
	protected.Post("/menu/upload", menu.UploadMenuHandler())

	// Satışlar
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Post("/sales/upload", sales.UploadSalesHandler())
	protected.Delete("/sales", sales.ResetSalesHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())
	protected.Get("/dashboard/top-dishes", dashboard.TopDishesHandler())
	protected.Get("/dashboard/consumption", dashboard.ConsumptionHandler())
	protected.Get("/dashboard/below-threshold", dashboard.BelowThresholdHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
