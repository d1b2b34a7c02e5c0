package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	Env         string // "production" switches to JSON logs
	JWTSecret   []byte
	TokenTTL    time.Duration
	Storage     string // "db" or "memory"
	CORSOrigins []string
	DB          DBConfig
}

type DBConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// Load reads the environment, after loading .env when one exists
func Load() *Config {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "720h"))
	if err != nil || ttl <= 0 {
		ttl = 720 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		Env:         getEnv("APP_ENV", "development"),
		JWTSecret:   []byte(getEnv("JWT_SECRET", "food_cart_dev_secret")),
		TokenTTL:    ttl,
		Storage:     getEnv("STORAGE", "db"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		DB: DBConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    getEnv("DB_DSN", "food_cart.db"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
