// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration errors reported by Validate.
var (
	ErrMissingBotToken = errors.New("bot token is required (set BOT_TOKEN)")
	ErrMissingAPIKey   = errors.New("ai api key is required (set AI_API_KEY)")
)

// Config holds all application configuration.
type Config struct {
	Bot BotConfig `mapstructure:"bot"`
	AI  AIConfig  `mapstructure:"ai"`
	Ops OpsConfig `mapstructure:"ops"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	Token       string        `mapstructure:"token"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
}

// AIConfig holds the text generation backend configuration.
type AIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Region      string        `mapstructure:"region"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// OpsConfig holds the operational HTTP endpoint configuration.
type OpsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Enabled reports whether the operational endpoint should be served.
func (o *OpsConfig) Enabled() bool {
	return o.Addr != ""
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults. Every key needs a default (empty for secrets) so
	// AutomaticEnv can surface env-only values through Unmarshal.
	setDefaults(v)

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Enable environment variable override
	// Environment variables use underscore separator and uppercase
	// e.g., BOT_TOKEN, AI_API_KEY, AI_MODEL, OPS_ADDR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// An empty env value still counts as set, so OPS_ADDR="" turns the
	// ops endpoint off instead of falling back to the default.
	v.AllowEmptyEnv(true)

	// Read config file (optional - env vars can provide all config)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we can use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Bot defaults
	v.SetDefault("bot.token", "")
	v.SetDefault("bot.poll_timeout", "10s")

	// AI defaults
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "https://ark.cn-beijing.volces.com/api/v3")
	v.SetDefault("ai.region", "cn-beijing")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.max_tokens", 1024)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.timeout", "60s")

	// Ops endpoint defaults
	v.SetDefault("ops.addr", ":8080")
}

// Validate checks that the required secrets are present. The bot refuses
// to start without them.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Bot.Token) == "" {
		return ErrMissingBotToken
	}
	if strings.TrimSpace(c.AI.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
