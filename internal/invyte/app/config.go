package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/notify"
)

type Config struct {
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./invyte.db)
	JWTSecret     string        // Required outside dev: HS256 secret shared with the session service
	JWTIssuer     string        // Optional: expected token issuer, unchecked when empty
	InviteBaseURL string        // Optional: prefix for invite links in notifications
	TokenTTL      time.Duration // Optional: lifetime of tokens minted by the token command (default: 24h)

	Notify                notify.Config
	DispatchInterval      time.Duration // Outbox drain interval (default: 5s)
	DispatchBatchSize     int           // Notifications per drain (default: 50)
	NotificationRetention time.Duration // How long sent notifications are kept (default: 7 days)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:  getEnvOrDefault("INVYTE_DATABASE_FILE", "invyte.db"),
		JWTSecret:     readSecret("INVYTE_JWT_SECRET", "INVYTE_JWT_SECRET_FILE"),
		JWTIssuer:     os.Getenv("INVYTE_JWT_ISSUER"),
		InviteBaseURL: getEnvOrDefault("INVYTE_INVITE_BASE_URL", "http://localhost:8080/invite/"),
		TokenTTL:      getEnvDurationOrDefault("INVYTE_TOKEN_TTL", 24*time.Hour),

		Notify: notify.Config{
			Driver: strings.ToLower(getEnvOrDefault("NOTIFY_DRIVER", "log")),
			SMS: notify.SMSConfig{
				URL:            os.Getenv("NOTIFY_SMS_URL"),
				APIKey:         readSecret("NOTIFY_SMS_API_KEY", "NOTIFY_SMS_API_KEY_FILE"),
				CountryCode:    getEnvOrDefault("NOTIFY_SMS_COUNTRY_CODE", "91"),
				InviteTemplate: os.Getenv("NOTIFY_SMS_INVITE_TEMPLATE"),
				RSVPTemplate:   os.Getenv("NOTIFY_SMS_RSVP_TEMPLATE"),
				Timeout:        getEnvDurationOrDefault("NOTIFY_SMS_TIMEOUT", 10*time.Second),
			},
			NATS: notify.NATSConfig{
				URL:     getEnvOrDefault("NOTIFY_NATS_URL", "nats://127.0.0.1:4222"),
				Subject: getEnvOrDefault("NOTIFY_NATS_SUBJECT", "invyte.notifications"),
			},
		},
		DispatchInterval:      getEnvDurationOrDefault("DISPATCH_INTERVAL", 5*time.Second),
		DispatchBatchSize:     getEnvIntOrDefault("DISPATCH_BATCH_SIZE", 50),
		NotificationRetention: getEnvDurationOrDefault("NOTIFICATION_RETENTION", 7*24*time.Hour),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// readSecret prefers the inline variable and falls back to a file path.
func readSecret(key, fileKey string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	path := os.Getenv(fileKey)
	if path == "" {
		return ""
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
