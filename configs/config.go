package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	PageSize    int
	DeliveryFee float64
	TaxRate     float64

	// how long the tracker waits before advancing an order one step
	StatusInterval time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using defaults")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		Port:           getEnv("PORT", "8000"),
		PageSize:       getEnvInt("PAGE_SIZE", 6),
		DeliveryFee:    getEnvFloat("DELIVERY_FEE", 5.00),
		TaxRate:        getEnvFloat("TAX_RATE", 0.08),
		StatusInterval: time.Duration(getEnvInt("STATUS_INTERVAL_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}
