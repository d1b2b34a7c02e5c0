package config

import (
	"path/filepath"
	"testing"
	"time"

	"food-cart-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "JWT_SECRET", "TOKEN_TTL", "STORAGE", "CORS_ORIGINS", "DB_DRIVER", "DB_DSN"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "db", cfg.Storage)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, DBConfig{Driver: "sqlite", DSN: "food_cart.db"}, cfg.DB)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/food")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "postgres", cfg.DB.Driver)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	assert.Equal(t, 720*time.Hour, Load().TokenTTL)
}

func TestInitDB_SeedsMenuOnce(t *testing.T) {
	db, err := InitDB(DBConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "seed.db")}, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, SeedMenu(db))
	require.NoError(t, SeedMenu(db))

	var items []models.MenuItem
	require.NoError(t, db.Find(&items).Error)
	assert.Len(t, items, len(defaultMenu))
	for _, it := range items {
		assert.True(t, it.IsAvailable, it.Name)
	}
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(DBConfig{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development", "test"} {
		log, err := NewLogger(env)
		require.NoError(t, err, env)
		assert.NotNil(t, log)
	}
	_, err := NewLogger("staging")
	assert.ErrorIs(t, err, errUnknownEnv)
}
