package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Salesforce SalesforceConfig `mapstructure:"salesforce"`
	Fields     FieldsConfig     `mapstructure:"fields"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
	Retry      RetryConfig      `mapstructure:"retry"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
}

// SalesforceConfig holds Salesforce JWT auth settings and the target object.
type SalesforceConfig struct {
	ClientID string  `mapstructure:"client_id"`
	Username string  `mapstructure:"username"`
	KeyPath  string  `mapstructure:"key_path"`
	LoginURL string  `mapstructure:"login_url"`
	Object   string  `mapstructure:"object"`
	RateRPS  float64 `mapstructure:"rate_rps"`
}

// FieldsConfig names the operational and append-style schema fields. Tenants
// name custom fields differently, so these are display names, not ids.
type FieldsConfig struct {
	AttemptCounter string `mapstructure:"attempt_counter"`
	BookingFlag    string `mapstructure:"booking_flag"`
	MemoryLog      string `mapstructure:"memory_log"`
}

// PipelineConfig configures extraction behavior.
type PipelineConfig struct {
	// CoverageTarget is the number of meaningful extracted fields after
	// which remaining tiers are skipped.
	CoverageTarget int `mapstructure:"coverage_target"`
	// MinTextLen is the minimum summary/transcript length considered usable.
	MinTextLen int `mapstructure:"min_text_len"`
}

// RetryConfig bounds retries at external-call boundaries.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseDelay   time.Duration `mapstructure:"base_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CALLSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("salesforce.login_url", "https://login.salesforce.com")
	v.SetDefault("salesforce.object", "Lead")
	v.SetDefault("salesforce.rate_rps", 5.0)
	v.SetDefault("fields.attempt_counter", "Call Attempts")
	v.SetDefault("fields.booking_flag", "Appointment Booked")
	v.SetDefault("fields.memory_log", "Seller Memory")
	v.SetDefault("pipeline.coverage_target", 3)
	v.SetDefault("pipeline.min_text_len", 10)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_delay", "500ms")
	v.SetDefault("retry.max_delay", "10s")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks settings required before any pass can run.
func (c *Config) Validate() error {
	if c.Salesforce.ClientID == "" {
		return eris.New("config: salesforce client_id is required (CALLSYNC_SALESFORCE_CLIENT_ID)")
	}
	if c.Salesforce.Username == "" {
		return eris.New("config: salesforce username is required (CALLSYNC_SALESFORCE_USERNAME)")
	}
	if c.Salesforce.KeyPath == "" {
		return eris.New("config: salesforce key_path is required (CALLSYNC_SALESFORCE_KEY_PATH)")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
