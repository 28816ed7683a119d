// Package config loads the YAML configuration of the api server and the relayer.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host" default:"0.0.0.0"`
	Port         int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
}

// GRPCConfig contains gRPC server settings
type GRPCConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Host    string `yaml:"host" default:"0.0.0.0"`
	Port    int    `yaml:"port" default:"9091" validate:"min=1,max=65535"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"aa_ledger" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `yaml:"max_open_conns" default:"20" validate:"min=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" default:"5" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" default:"30m"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool `yaml:"enabled" default:"true"`
	MetricsPort int  `yaml:"metrics_port" default:"9090" validate:"min=1,max=65535"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// AuthConfig contains caller authentication settings
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" validate:"required,min=32"`
	JWTIssuer      string        `yaml:"jwt_issuer" default:"aa-bridge-middleware"`
	TokenTTL       time.Duration `yaml:"token_ttl" default:"1h"`
	ChallengeTTL   time.Duration `yaml:"challenge_ttl" default:"5m"`
	AllowSignature bool          `yaml:"allow_signature" default:"true"`
}

// LedgerConfig names the records the api server operates on
type LedgerConfig struct {
	// Authority of the entry point and the bridge, 0x-prefixed hex.
	Authority string `yaml:"authority" validate:"required"`
	// Decimals used to render native amounts to clients.
	NativeDecimals int32 `yaml:"native_decimals" default:"9" validate:"min=0,max=18"`
	MaxBatchSize   int   `yaml:"max_batch_size" default:"64" validate:"min=1"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" default:"30s"`
}

// APIServerConfig is the configuration of cmd/api-server
type APIServerConfig struct {
	Server     ServerConfig     `yaml:"server"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Auth       AuthConfig       `yaml:"auth"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
}

// RelayConfig contains the relay engine settings
type RelayConfig struct {
	// SourceBridge and DestinationBridge are bridge record addresses, 0x-prefixed hex.
	SourceBridge      string        `yaml:"source_bridge" validate:"required"`
	DestinationBridge string        `yaml:"destination_bridge" validate:"required"`
	SourceChainID     uint64        `yaml:"source_chain_id" validate:"required"`
	PollingInterval   time.Duration `yaml:"polling_interval" default:"10s"`
	BatchSize         int           `yaml:"batch_size" default:"50" validate:"min=1"`
	StartID           uint64        `yaml:"start_id"`
	MaxRetries        int           `yaml:"max_retries" default:"3" validate:"min=0"`
	RetryDelay        time.Duration `yaml:"retry_delay" default:"5s"`
	// MasterKeyEnv names the environment variable holding the base64 master key.
	MasterKeyEnv string `yaml:"master_key_env" default:"RELAYER_MASTER_KEY"`
	// ValidatorKeys are private key seeds encrypted under the master key.
	// The first key is the identity that marks source records claimed.
	ValidatorKeys []string `yaml:"validator_keys" validate:"required,min=1,dive,required"`
	// SettlementAddr is the gRPC address of a remote api-server. Empty
	// submits mints through the local ledger database.
	SettlementAddr string `yaml:"settlement_addr"`
	// RelayBurns also relays burn records of the source bridge.
	RelayBurns bool `yaml:"relay_burns" default:"true"`
}

// RelayerConfig is the configuration of cmd/relayer
type RelayerConfig struct {
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Relay      RelayConfig      `yaml:"relay"`
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	cfg := new(APIServerConfig)
	if err := load(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRelayer loads relayer configuration from file
func LoadRelayer(configPath string) (*RelayerConfig, error) {
	cfg := new(RelayerConfig)
	if err := load(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} with the value of the environment variable.
// Bare $VAR is left untouched so passwords may contain '$'.
func expandEnv(in []byte) []byte {
	return envPattern.ReplaceAllFunc(in, func(m []byte) []byte {
		name := envPattern.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}

func load(configPath string, out any) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := parse(raw, out); err != nil {
		return err
	}
	return nil
}

func parse(raw []byte, out any) error {
	if err := defaults.Set(out); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := yaml.Unmarshal(expandEnv(raw), out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(out); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Addr returns the host:port the server listens on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the address the standalone metrics server listens on
func (c *MonitoringConfig) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.MetricsPort)
}

// Addr returns the host:port the gRPC server listens on
func (c *GRPCConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
