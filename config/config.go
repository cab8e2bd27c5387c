package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	applog "savorybook/logger"

	"github.com/joho/godotenv"
)

// Log is the server process logger
var Log = applog.New("savorybook-api")

// JWTSecret signs session tokens. Load replaces it from JWT_SECRET.
var JWTSecret = []byte("savorybook_dev_secret")

type Config struct {
	Port           string
	DBPath         string
	GinMode        string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	AMQPURL        string
	BackendURL     string
	GatewayTimeout time.Duration
	PaymentDelay   time.Duration
	SeedOnStart    bool
}

// Load reads an optional .env file, then the environment
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Log.Warn(context.Background(), "load_config", "⚠️ could not read .env: "+err.Error())
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		JWTSecret = []byte(s)
	}
	return Config{
		Port:           getEnv("PORT", "5000"),
		DBPath:         getEnv("DB_PATH", "savorybook.db"),
		GinMode:        os.Getenv("GIN_MODE"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),
		AMQPURL:        os.Getenv("AMQP_URL"),
		BackendURL:     getEnv("BACKEND_URL", "http://127.0.0.1:5000/api"),
		GatewayTimeout: envDur("GATEWAY_TIMEOUT", 5*time.Second),
		PaymentDelay:   envDur("PAYMENT_DELAY", 2*time.Second),
		SeedOnStart:    envBool("SEED_ON_START", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, d int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return d
}

func envFloat(key string, d float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return d
}

func envDur(key string, d time.Duration) time.Duration {
	if dur, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return dur
	}
	return d
}

func envBool(key string, d bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
