package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredEnv = map[string]string{
	"SIGEP_CONTRACT":      "9912208555",
	"SIGEP_CNPJ":          "34028316000103",
	"SIGEP_USER":          "sigep",
	"SIGEP_PASSWORD":      "n5f9t8",
	"SIGEP_POSTAGE_CARD":  "0057018901",
	"SIGEP_ORIGIN_ZIP":    "14020-273",
	"SIGEP_ADMIN_CODE":    "08082650",
	"SIGEP_REGIONAL_CODE": "10",
	"SIGEP_SENDER_NAME":   "Loja Teste",
	"SIGEP_SENDER_STREET": "Av Presidente Vargas",
	"SIGEP_SENDER_NUMBER": "1265",
	"SIGEP_SENDER_ZIP":    "14020273",
	"SIGEP_SENDER_CITY":   "Ribeirao Preto",
	"SIGEP_SENDER_STATE":  "SP",
	"SRO_USER":            "ECT",
	"SRO_PASSWORD":        "SRO",
}

// setRequiredEnv sets every required key for the duration of the test.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range requiredEnv {
		t.Setenv(k, v)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.Sigep.Sandbox)
	assert.Empty(t, cfg.Sigep.URL)
	assert.Equal(t, 30*time.Second, cfg.Sigep.Timeout())
	assert.Equal(t, "https://webservice.correios.com.br/service/rastro", cfg.SRO.URL)
	assert.Equal(t, 3*time.Second, cfg.SRO.Timeout())
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SIGEP_SANDBOX", "false")
	t.Setenv("SIGEP_TIMEOUT_SECONDS", "10")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOSTNAME", "proxy.local")
	t.Setenv("PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.False(t, cfg.Sigep.Sandbox)
	assert.Equal(t, 10*time.Second, cfg.Sigep.Timeout())
	assert.Equal(t, "9912208555", cfg.Sigep.Contract)
	assert.Equal(t, "Loja Teste", cfg.Sigep.Sender.Name)
	assert.Equal(t, "SP", cfg.Sigep.Sender.State)
	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.local", cfg.Proxy.Hostname)
	assert.Equal(t, 3128, cfg.Proxy.Port)
}

// TestLoad_MissingRequired verifies that a missing required key is reported by name.
func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIGEP_PASSWORD", "")

	cfg, err := Load(".")

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIGEP_PASSWORD")
}
