package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Values come from
// the environment, with a .env file loaded first when present.
type Config struct {
	AppPort       string
	AppMode       string
	StoreDir      string
	AllowedOrigin string
	SeedPassword  string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:       getEnv("APP_PORT", "5001"),
		AppMode:       getEnv("APP_MODE", "debug"),
		StoreDir:      getEnv("STORE_DIR", "data/store"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		SeedPassword:  getEnv("SEED_PASSWORD", "password123"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
