package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	UploadDir string
	LogFile   string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func Load() Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ecycle.db"
	}
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./uploads"
	}
	logFile := os.Getenv("LOG_FILE")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Printf("[config] JWT_SECRET not set, using insecure dev secret")
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		UploadDir:       uploads,
		LogFile:         logFile,
		JWTSecret:       secret,
		AccessTokenTTL:  ttl("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: ttl("REFRESH_TOKEN_TTL", 7*24*time.Hour),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.LogFile)
	return cfg
}

func ttl(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] bad %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
