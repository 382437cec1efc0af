package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Shopify ShopifyConfig
	AI      AIConfig
	Log     LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SessionConfig holds the shared secret the embedded admin frontend presents
type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

// ShopifyConfig holds Shopify Admin API configuration
type ShopifyConfig struct {
	ShopDomain  string `mapstructure:"shop_domain"`
	AccessToken string `mapstructure:"access_token"`
	APIVersion  string `mapstructure:"api_version"`
	BaseURL     string `mapstructure:"base_url"` // overrides https://{shop}/admin/api/{version}
}

// AIConfig holds the completion provider configuration
type AIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Configured reports whether a shop and access token are both set
func (s ShopifyConfig) Configured() bool {
	return s.ShopDomain != "" && s.AccessToken != ""
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/waypoint/")

	// WAYPOINT_SERVER_PORT -> server.port
	v.SetEnvPrefix("WAYPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"https://admin.shopify.com"})

	v.SetDefault("shopify.api_version", "2025-01")

	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")

	v.SetDefault("log.level", "info")
}

// bindEnv registers keys that have no default so Unmarshal sees them.
// The AI key is also accepted under the provider's conventional name.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"session.secret":       {"WAYPOINT_SESSION_SECRET"},
		"shopify.shop_domain":  {"WAYPOINT_SHOPIFY_SHOP_DOMAIN"},
		"shopify.access_token": {"WAYPOINT_SHOPIFY_ACCESS_TOKEN"},
		"shopify.base_url":     {"WAYPOINT_SHOPIFY_BASE_URL"},
		"ai.api_key":           {"WAYPOINT_AI_API_KEY", "GOOGLE_AI_API_KEY"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// validate validates the configuration
func validate(config *Config) error {
	if config.AI.APIKey == "" {
		return fmt.Errorf("AI API key is required (set WAYPOINT_AI_API_KEY or GOOGLE_AI_API_KEY)")
	}

	if config.AI.Model == "" {
		return fmt.Errorf("AI model is required")
	}

	if (config.Shopify.ShopDomain == "") != (config.Shopify.AccessToken == "") {
		return fmt.Errorf("Shopify shop domain and access token must be set together")
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got: %s", config.Log.Level)
	}

	return nil
}
