package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	SessionMaxAge time.Duration
	SessionSecure bool
	AdminEmail    string
	AdminPassword string
	PublicBaseURL string
	CORSOrigins   []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "menucloud.db"),
		Port:          getEnv("PORT", "8000"),
		SessionMaxAge: time.Duration(getEnvInt("SESSION_MAX_AGE", 604800)) * time.Second,
		SessionSecure: getEnv("SESSION_SECURE", "false") == "true",
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
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
