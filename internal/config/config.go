package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort             string
	DatabasePath         string // SQLite dosya yolu
	JWTSecret            string
	CORSOrigins          string
	OperatorPasswordHash string // operatör şifresinin bcrypt hash'i
}

func Load() *Config {
	// .env varsa yükle, yoksa sorun değil
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DatabasePath:         getEnv("DATABASE_PATH", "./envanter.db"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		CORSOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.OperatorPasswordHash == "" {
		log.Fatal("[FATAL] OPERATOR_PASSWORD_HASH tanımlanmamış! Operatör girişi için zorunludur.")
	}
	if cfg.DatabasePath == "./envanter.db" {
		log.Println("[WARN] DATABASE_PATH varsayılan değer kullanılıyor (./envanter.db).")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
