package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APP_PORT       string
	DATA_DIR       string
	PUBLIC_DIR     string
	STORE_DRIVER   string
	SQLITE_DSN     string
	REDIS_ADDR     string
	REDIS_PASSWORD string
	KAFKA_ADDRESS  string
	KAFKA_TOPIC    string
	LOG_LEVEL      string
	COOKIE_SECURE  bool
	SESSION_TTL    time.Duration
	ADMIN_USERNAME string
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		APP_PORT:       getenvDefault("APP_PORT", "8080"),
		DATA_DIR:       getenvDefault("DATA_DIR", "data"),
		PUBLIC_DIR:     getenvDefault("PUBLIC_DIR", "public"),
		STORE_DRIVER:   getenvDefault("STORE_DRIVER", "json"),
		SQLITE_DSN:     getenvDefault("SQLITE_DSN", "khadamat.db"),
		REDIS_ADDR:     os.Getenv("REDIS_ADDR"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		KAFKA_TOPIC:    getenvDefault("KAFKA_TOPIC", "request_events"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
		COOKIE_SECURE:  os.Getenv("COOKIE_SECURE") == "true",
		SESSION_TTL:    sessionTTL(),
		ADMIN_USERNAME: os.Getenv("ADMIN_USERNAME"),
		ADMIN_EMAIL:    os.Getenv("ADMIN_EMAIL"),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
	}

	return config, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func sessionTTL() time.Duration {
	minutes, _ := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES"))
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
