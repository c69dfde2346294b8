package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"INVYTE_DATABASE_FILE", "NOTIFY_DRIVER", "PORT", "DISPATCH_INTERVAL", "INVYTE_JWT_SECRET", "INVYTE_JWT_SECRET_FILE"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "invyte.db", cfg.DatabaseFile)
	require.Equal(t, "log", cfg.Notify.Driver)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.DispatchInterval)
	require.Equal(t, 50, cfg.DispatchBatchSize)
	require.Equal(t, 7*24*time.Hour, cfg.NotificationRetention)
	require.Equal(t, "91", cfg.Notify.SMS.CountryCode)
	require.Empty(t, cfg.JWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("NOTIFY_DRIVER", "NATS")
	t.Setenv("PORT", "9090")
	t.Setenv("DISPATCH_INTERVAL", "30")
	t.Setenv("NOTIFICATION_RETENTION", "48h")
	t.Setenv("DISPATCH_BATCH_SIZE", "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, "nats", cfg.Notify.Driver)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.DispatchInterval)
	require.Equal(t, 48*time.Hour, cfg.NotificationRetention)
	require.Equal(t, 50, cfg.DispatchBatchSize)
}

func TestLoadConfig_SecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 32)+"\n"), 0o600))
	t.Setenv("INVYTE_JWT_SECRET", "")
	t.Setenv("INVYTE_JWT_SECRET_FILE", path)

	require.Equal(t, strings.Repeat("x", 32), LoadConfig().JWTSecret)
}

func TestNewTokens(t *testing.T) {
	_, err := NewTokens(Config{Env: "prod"}, slogx.Discard())
	require.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewTokens(Config{Env: "prod", JWTSecret: "short"}, slogx.Discard())
	require.Error(t, err)

	tokens, err := NewTokens(Config{Env: "dev"}, slogx.Discard())
	require.NoError(t, err)
	require.NotNil(t, tokens)
}

func TestNew_ServesHealth(t *testing.T) {
	cfg := Config{
		DatabaseFile:        filepath.Join(t.TempDir(), "invyte.db"),
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	}

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestNew_UnknownNotifyDriver(t *testing.T) {
	cfg := Config{
		DatabaseFile: filepath.Join(t.TempDir(), "invyte.db"),
		Env:          "dev",
	}
	cfg.Notify.Driver = "pigeon"

	_, err := New(cfg)
	require.Error(t, err)
}
