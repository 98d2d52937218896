package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"table_reservations/pkg/auth"
)

// Config holds the environment driven settings of the reservation service.
type Config struct {
	Port              int
	AdminPassword     string
	AdminPasswordHash string
	DatabaseURL       string
	LogLevel          slog.Level
	OTLPEndpoint      string
	ServiceName       string
	CreateRateLimit   float64
	CreateRateBurst   int
}

// Load reads the process environment. Unset values fall back to defaults;
// values that are set but unparsable are reported together.
func Load() (Config, error) {
	cfg := Config{
		AdminPassword:     getEnv("ADMIN_PASSWORD", auth.DefaultAdminPassword),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		DatabaseURL:       getEnv("DATABASE_URL", "sqlite://reservations.db"),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTLP_GRPC_ENDPOINT")),
		ServiceName:       getEnv("SERVICE_NAME", "table-reservations"),
	}

	invalid := make([]string, 0)

	port, err := strconv.Atoi(getEnv("PORT", "3001"))
	if err != nil || port <= 0 || port > 65535 {
		invalid = append(invalid, "PORT")
	}
	cfg.Port = port

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}

	limit, err := strconv.ParseFloat(getEnv("CREATE_RATE_LIMIT", "0"), 64)
	if err != nil || limit < 0 {
		invalid = append(invalid, "CREATE_RATE_LIMIT")
	}
	cfg.CreateRateLimit = limit

	burst, err := strconv.Atoi(getEnv("CREATE_RATE_BURST", "5"))
	if err != nil || burst <= 0 {
		invalid = append(invalid, "CREATE_RATE_BURST")
	}
	cfg.CreateRateBurst = burst

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// Authorizer builds the admin capability check. A bcrypt hash takes
// precedence over the plaintext password.
func (c Config) Authorizer() (auth.Authorizer, error) {
	if c.AdminPasswordHash != "" {
		return auth.NewBcrypt(c.AdminPasswordHash)
	}
	return auth.NewPlaintext(c.AdminPassword), nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
