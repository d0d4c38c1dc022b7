package auth

import (
	"envanter-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// POST /api/auth/login
// Operatör şifresi env'deki bcrypt hash ile karşılaştırılır.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre zorunlu")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.OperatorPasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{"token": token})
	}
}
