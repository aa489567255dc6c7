package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is everything the process reads from the environment, loaded once
// in main and handed down. Handlers never touch os.Getenv themselves.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	AdminUsername string
	AdminPassword string // plain value or bcrypt hash
	JWTSecret     string

	CORSOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SummaryFrom  string
	SummaryTo    string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "1414"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:  getenv("MONGO_DATABASE", "ChaiMine"),
		AdminUsername: os.Getenv("ADMIN_APP_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_APP_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET", "my_secret_key"),
		CORSOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getenvInt("SMTP_PORT", 465),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SummaryFrom:   os.Getenv("SUMMARY_FROM"),
		SummaryTo:     os.Getenv("SUMMARY_TO"),
	}
}

// SummaryMailEnabled reports whether the daily summary should go out by
// mail in addition to the log.
func (c *Config) SummaryMailEnabled() bool {
	return c.SMTPHost != "" && c.SummaryTo != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
