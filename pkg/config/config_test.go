package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiServerYAML = `
server:
  port: 8181
database:
  user: ledger
  password: ${TEST_DB_PASSWORD}
auth:
  jwt_secret: ${TEST_JWT_SECRET}
ledger:
  authority: "0x0100000000000000000000000000000000000000000000000000000000000000"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAPIServer(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "p$ss")
	t.Setenv("TEST_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := LoadAPIServer(writeConfig(t, apiServerYAML))
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8181", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "p$ss", cfg.Database.Password)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 9091, cfg.GRPC.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int32(9), cfg.Ledger.NativeDecimals)
	assert.Equal(t, 30*time.Second, cfg.Shutdown.Timeout)
}

func TestLoadAPIServerValidation(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "x")
	t.Setenv("TEST_JWT_SECRET", "short")

	_, err := LoadAPIServer(writeConfig(t, apiServerYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWTSecret")

	_, err = LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRelayer(t *testing.T) {
	body := `
database:
  user: relayer
relay:
  source_bridge: "0x01"
  destination_bridge: "0x02"
  source_chain_id: 1
  validator_keys: ["abc"]
`
	cfg, err := LoadRelayer(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Relay.PollingInterval)
	assert.Equal(t, 50, cfg.Relay.BatchSize)
	assert.Equal(t, "RELAYER_MASTER_KEY", cfg.Relay.MasterKeyEnv)
	assert.True(t, cfg.Relay.RelayBurns)
	assert.Empty(t, cfg.Relay.SettlementAddr)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)

	_, err = LoadRelayer(writeConfig(t, "database:\n  user: relayer\n"))
	require.Error(t, err)
}

func TestExpandEnvLeavesBareDollar(t *testing.T) {
	t.Setenv("X_VAR", "value")
	assert.Equal(t, "a value $Y", string(expandEnv([]byte("a ${X_VAR} $Y"))))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
