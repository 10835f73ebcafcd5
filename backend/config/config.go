package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	// DataBackend selects the collection store implementation:
	// "postgres" (default) or "memory" (fixture-seeded fallback).
	DataBackend string

	// CheckoutDelay is the simulated payment latency.
	CheckoutDelay time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "hakwon"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DataBackend:   getEnv("DATA_BACKEND", "postgres"),
		CheckoutDelay: getEnvDuration("CHECKOUT_DELAY_MS", 2000) * time.Millisecond,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(defaultValue)
}
