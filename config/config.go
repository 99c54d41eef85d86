package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Processor  ProcessorConfig  `mapstructure:"processor"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Retry      RetryConfig      `mapstructure:"retry"`
	Idempotency IdempotencyConfig `mapstructure:"idempotency"`
	GL         GLConfig         `mapstructure:"gl"`

	// TenantProcessorKeys and TenantEntitlements are not mapstructure
	// fields: they are scanned directly from the environment because
	// their key names are dynamic (one per tenant slug), see
	// loadTenantScopedEnv.
	TenantProcessorKeys   map[string]string
	TenantWebhookSecrets  map[string]string
	TenantEntitlements    map[string]string
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
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ProcessorConfig holds processor-wide (non-tenant-scoped) settings.
// Per-tenant secret keys live in Config.TenantProcessorKeys instead, since
// each tenant authenticates against the processor with its own account.
type ProcessorConfig struct {
	Sandbox bool `mapstructure:"sandbox"`
}

// WebhookConfig holds inbound webhook verification and retry settings.
type WebhookConfig struct {
	SignatureToleranceSeconds int `mapstructure:"signature_tolerance_seconds"`
	RetryMaxAttempts          int `mapstructure:"retry_max_attempts"`
}

// RetryConfig holds the payment dunning retry schedule.
type RetryConfig struct {
	PaymentScheduleDays []int `mapstructure:"payment_schedule_days"`
	MaxPaymentAttempts  int   `mapstructure:"max_payment_attempts"`
}

// IdempotencyConfig holds the idempotency.ttl_days setting. The HTTP
// idempotency-key middleware does not read it: SetupRouter passes its own
// fixed idempotencyKeyTTL (24h).
type IdempotencyConfig struct {
	TTLDays int `mapstructure:"ttl_days"`
}

// TTL returns the idempotency record lifetime as a time.Duration.
func (i IdempotencyConfig) TTL() time.Duration {
	return time.Duration(i.TTLDays) * 24 * time.Hour
}

// GLConfig holds the external general-ledger service transport.
type GLConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: AR_ (AR engine).
// Nested keys use underscore: AR_DATABASE_HOST, AR_JWT_SECRET, etc.
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
	v.SetDefault("database.dbname", "ar_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "ar-engine")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("processor.sandbox", true)
	v.SetDefault("webhook.signature_tolerance_seconds", 300)
	v.SetDefault("webhook.retry_max_attempts", 5)
	v.SetDefault("retry.payment_schedule_days", []int{1, 3, 7})
	v.SetDefault("retry.max_payment_attempts", 3)
	v.SetDefault("idempotency.ttl_days", 7)
	v.SetDefault("gl.base_url", "http://localhost:9090")
	v.SetDefault("gl.timeout", "10s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: AR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("AR")
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

	cfg.TenantProcessorKeys = loadTenantScopedEnv("AR_PROCESSOR_SECRET_KEY_")
	cfg.TenantWebhookSecrets = loadTenantScopedEnv("AR_PROCESSOR_WEBHOOK_SECRET_")
	cfg.TenantEntitlements = loadTenantScopedEnv("AR_ENTITLEMENTS_JSON_")

	return &cfg, nil
}

// loadTenantScopedEnv scans the process environment for variables named
// "<prefix><TENANT_SLUG>" and returns a map keyed on the lowercased
// tenant slug. Tenant secrets are per-account (each tenant has its own
// processor credentials), so they cannot live under a single static
// viper key the way Database/Redis/JWT settings do.
func loadTenantScopedEnv(prefix string) map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		slug := strings.ToLower(strings.TrimPrefix(key, prefix))
		out[slug] = value
	}
	return out
}

// atoiOrDefault parses an integer env-style value, falling back silently
// on malformed input rather than failing boot over an optional override.
func atoiOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
