package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "netbackup.db", cfg.Database.DSN)
	assert.Equal(t, "unit-test-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "superadmin", cfg.Auth.BootstrapUser)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_RejectsPlaceholderSecret(t *testing.T) {
	// Without an override the default CHANGE_ME must not pass validation.
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "unit-test-secret")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "0")

	_, err := Load()
	assert.Error(t, err)
}
