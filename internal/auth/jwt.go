package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tek operatörlü sistem: kullanıcı tablosu yok, claim sadece oturumu tanımlar.
type JWTCustomClaims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string) (string, error) {
	claims := &JWTCustomClaims{
		Operator: "operator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1 gün
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
