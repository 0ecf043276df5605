package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "8088", cfg.App.Port)
	require.Equal(t, "postgres", cfg.DB.Driver)
	require.Equal(t, "/public/uploads", cfg.App.PublicBaseURL)
	require.Equal(t, time.Hour, cfg.AccessTokenExpiry())
	require.Equal(t, 5, cfg.RateLimit.PerSecond)
	require.Equal(t, 10, cfg.RateLimit.Burst)
	require.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
app:
  port: "9000"
  env: staging
db:
  name: from_yaml
  host: yaml-host
rate_limit:
  burst: 3
`)
	writeFile(t, dir, ".env", "DB_NAME=from_dotenv\n")
	t.Cleanup(func() { os.Unsetenv("DB_NAME") })
	t.Setenv("PORT", "9100")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	// process env beats the yaml file
	require.Equal(t, "9100", cfg.App.Port)
	// .env beats the yaml file
	require.Equal(t, "from_dotenv", cfg.DB.Name)
	// yaml beats the defaults
	require.Equal(t, "staging", cfg.App.Env)
	require.Equal(t, "yaml-host", cfg.DB.Host)
	require.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "soon")
	_, err := LoadFrom(t.TempDir())
	require.EqualError(t, err, "JWT_ACCESS_TOKEN_EXPIRY_MINUTES: expected integer, got 'soon'")

	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "30")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = LoadFrom(t.TempDir())
	require.EqualError(t, err, "DB_DRIVER: expected postgres or sqlite, got 'mysql'")
}

func TestConnectSQLite(t *testing.T) {
	var cfg Config
	cfg.App.Env = "test"
	cfg.DB.Driver = "sqlite"
	cfg.DB.Path = filepath.Join(t.TempDir(), "clubhub.db")

	db, err := ConnectDB(cfg)
	require.NoError(t, err)
	require.Same(t, db, DB)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	require.NoError(t, sqlDB.Close())

	cfg.DB.Driver = "oracle"
	_, err = Dialector(cfg)
	require.Error(t, err)
}
