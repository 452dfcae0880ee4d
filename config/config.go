package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Core     CoreConfig     `mapstructure:"core"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret         string        `mapstructure:"secret"`
	PlayerExpiry   time.Duration `mapstructure:"player_expiry"`
	OperatorExpiry time.Duration `mapstructure:"operator_expiry"`
	Issuer         string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

// ChainConfig configures the blockchain node client.
type ChainConfig struct {
	NodeURL          string        `mapstructure:"node_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FundingAddress   string        `mapstructure:"funding_address"`
	MinConfirmations int           `mapstructure:"min_confirmations"`
}

// CoreConfig tunes the fairness, pool and settlement machinery. The values
// mirroring settings-store keys are only boot defaults; the store wins at
// runtime.
type CoreConfig struct {
	FairnessMode       string        `mapstructure:"fairness_mode"` // per_game, session_stream
	AnchorAmount       float64       `mapstructure:"anchor_amount"`
	AnchorFee          float64       `mapstructure:"anchor_fee"`
	SeedTTL            time.Duration `mapstructure:"seed_ttl"`
	DemoSeed           float64       `mapstructure:"demo_seed"`
	PoolFloor          int           `mapstructure:"pool_floor"`
	PoolRefillInterval time.Duration `mapstructure:"pool_refill_interval"`
	LossLimit          float64       `mapstructure:"loss_limit"`
	SessionDurationCap time.Duration `mapstructure:"session_duration_cap"`
	ApprovalThreshold  float64       `mapstructure:"approval_threshold"`
	WithdrawalFee      float64       `mapstructure:"withdrawal_fee"`
	FeeStep            float64       `mapstructure:"fee_step"`
	MaxSendAttempts    int           `mapstructure:"max_send_attempts"`
	SendTimeout        time.Duration `mapstructure:"send_timeout"`
	PollInterval       time.Duration `mapstructure:"poll_interval"`
	PollBatchSize      int           `mapstructure:"poll_batch_size"`
	AlertWebhookURL    string        `mapstructure:"alert_webhook_url"`
	AlertInterval      time.Duration `mapstructure:"alert_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CCC_ (Crypto Casino Core).
// Nested keys use underscore: CCC_DATABASE_HOST, CCC_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "casino_core")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.player_expiry", "24h")
	v.SetDefault("jwt.operator_expiry", "8h")
	v.SetDefault("jwt.issuer", "crypto-casino-core")
	v.SetDefault("aes.key", "")
	v.SetDefault("chain.node_url", "http://localhost:18082")
	v.SetDefault("chain.timeout", "15s")
	v.SetDefault("chain.funding_address", "")
	v.SetDefault("chain.min_confirmations", 1)
	v.SetDefault("core.fairness_mode", "session_stream")
	v.SetDefault("core.anchor_amount", 0.00000001)
	v.SetDefault("core.anchor_fee", 0.0001)
	v.SetDefault("core.seed_ttl", "24h")
	v.SetDefault("core.demo_seed", 100)
	v.SetDefault("core.pool_floor", 10)
	v.SetDefault("core.pool_refill_interval", "30s")
	v.SetDefault("core.loss_limit", 500)
	v.SetDefault("core.session_duration_cap", "12h")
	v.SetDefault("core.approval_threshold", 100)
	v.SetDefault("core.withdrawal_fee", 0.0001)
	v.SetDefault("core.fee_step", 0.0001)
	v.SetDefault("core.max_send_attempts", 3)
	v.SetDefault("core.send_timeout", "30s")
	v.SetDefault("core.poll_interval", "15s")
	v.SetDefault("core.poll_batch_size", 100)
	v.SetDefault("core.alert_webhook_url", "")
	v.SetDefault("core.alert_interval", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CCC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CCC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
