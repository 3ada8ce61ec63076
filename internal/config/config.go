package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	DatabaseURL    string
	AllowedOrigins []string
	LogLevel       string

	// mail
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	NotifyTimeout time.Duration
}

// FromEnv loads configuration from the environment, reading a .env file
// first when one exists.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SMTPHost:    getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:    strings.TrimSpace(os.Getenv("EMAIL_USER")),
		SMTPPass:    os.Getenv("EMAIL_PASS"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.AllowedOrigins = splitCSV(getenv("ALLOWED_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500"))

	port, err := strconv.Atoi(getenv("SMTP_PORT", "465"))
	if err != nil || port < 1 {
		return Config{}, fmt.Errorf("invalid SMTP_PORT")
	}
	cfg.SMTPPort = port

	notifySec, err := strconv.Atoi(getenv("NOTIFY_TIMEOUT_SECONDS", "10"))
	if err != nil || notifySec < 1 {
		return Config{}, fmt.Errorf("invalid NOTIFY_TIMEOUT_SECONDS")
	}
	cfg.NotifyTimeout = time.Duration(notifySec) * time.Second

	return cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
