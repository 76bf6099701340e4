package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBSource   string
	Port       string
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "restaurant.db"),
		Port:       getEnv("PORT", "8000"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		AccessTTL:  time.Duration(30) * time.Minute,
		RefreshTTL: time.Duration(24) * time.Hour,

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
