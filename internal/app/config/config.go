package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/lpernett/godotenv"
)

type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string

	// DatabaseURL switches the catalog to postgres; empty keeps the seeded
	// in-memory catalog.
	DatabaseURL string
	DBMaxConns  int

	// RedisAddr switches session persistence to Redis; empty keeps the
	// in-process store.
	RedisAddr     string
	RedisPassword string
	StateTTL      time.Duration

	// KafkaBroker enables the analytics event stream; empty disables it.
	KafkaBroker string

	GenerateLatency time.Duration
	KioskIdleAfter  time.Duration
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file, using environment")
	}

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		DatabaseURL:     env("DATABASE_URL", ""),
		DBMaxConns:      envInt("DATABASE_MAX_CONNS", 10),
		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPassword:   env("REDIS_PASSWORD", ""),
		StateTTL:        envDuration("STATE_TTL", 30*24*time.Hour),
		KafkaBroker:     env("KAFKA_BROKER", ""),
		GenerateLatency: envMillis("GENERATE_LATENCY_MS", 1500*time.Millisecond),
		KioskIdleAfter:  envDuration("KIOSK_IDLE_AFTER", 60*time.Second),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return n
}

func envMillis(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return time.Duration(ms) * time.Millisecond
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return d
}
