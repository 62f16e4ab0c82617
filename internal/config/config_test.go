package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-portal/internal/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ListingsCacheTTL)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
	assert.Equal(t, "gemini-2.0-flash", cfg.Chatbot.Model)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOriginList())
}

func TestLoadFrom_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_PORT=9191\nDB_NAME=portal_test\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("API_PORT")
		os.Unsetenv("DB_NAME")
	})

	cfg, err := config.LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "portal_test", cfg.Database.DBName)
	assert.Equal(t, "0.0.0.0:9191", cfg.GetServerAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=portal_test sslmode=disable")
}

func TestLoadFrom_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("API_ENV", "production")

	_, err := config.LoadFrom("")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := config.LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret", cfg.Auth.JWTSecret)
}
