package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	Storage  StorageConfig
	Mongo    MongoConfig
	Postgres PostgresConfig

	// Agent dispatch
	LLM      LLMConfig
	Dispatch DispatchConfig
	Places   PlacesConfig

	// Channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Storage drivers
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	Driver string
}

type MongoConfig struct {
	URI                    string
	Database               string
	ConversationCollection string
	TripCollection         string
	ConnectTimeout         time.Duration
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// DispatchConfig bounds every network-bound step of one query.
type DispatchConfig struct {
	ClassifyTimeout      time.Duration
	ProviderTimeout      time.Duration
	GenerationTimeout    time.Duration
	PersistTimeout       time.Duration
	ProviderRetryBackoff time.Duration
	MaxOptions           int
	Timezone             string
}

type PlacesConfig struct {
	APIKey   string
	Endpoint string // empty uses the Google default
	Language string
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.ConversationCollection = viper.GetString("mongo.conversation_collection")
	cfg.Mongo.TripCollection = viper.GetString("mongo.trip_collection")
	cfg.Mongo.ConnectTimeout = viper.GetDuration("mongo.connect_timeout")
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")

	switch cfg.Storage.Driver {
	case StorageDriverMongo, StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.RateLimit.RequestsPerMin <= 0 {
		return nil, fmt.Errorf("rate_limit.requests_per_min must be positive, got %d", cfg.RateLimit.RequestsPerMin)
	}

	// Dispatch
	cfg.Dispatch.ClassifyTimeout = viper.GetDuration("dispatch.classify_timeout")
	cfg.Dispatch.ProviderTimeout = viper.GetDuration("dispatch.provider_timeout")
	cfg.Dispatch.GenerationTimeout = viper.GetDuration("dispatch.generation_timeout")
	cfg.Dispatch.PersistTimeout = viper.GetDuration("dispatch.persist_timeout")
	cfg.Dispatch.ProviderRetryBackoff = viper.GetDuration("dispatch.provider_retry_backoff")
	cfg.Dispatch.MaxOptions = viper.GetInt("dispatch.max_options")
	cfg.Dispatch.Timezone = viper.GetString("dispatch.timezone")

	cfg.Places.APIKey = expandEnvVar(viper.GetString("places.api_key"))
	cfg.Places.Endpoint = viper.GetString("places.endpoint")
	cfg.Places.Language = viper.GetString("places.language")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := ValidateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("storage.driver", StorageDriverMongo)
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "travel_assistant")
	viper.SetDefault("mongo.conversation_collection", "conversations")
	viper.SetDefault("mongo.trip_collection", "trips")
	viper.SetDefault("mongo.connect_timeout", "10s")
	viper.SetDefault("postgres.max_open_conns", 10)

	viper.SetDefault("dispatch.classify_timeout", "15s")
	viper.SetDefault("dispatch.provider_timeout", "10s")
	viper.SetDefault("dispatch.generation_timeout", "45s")
	viper.SetDefault("dispatch.persist_timeout", "5s")
	viper.SetDefault("dispatch.provider_retry_backoff", "300ms")
	viper.SetDefault("dispatch.max_options", 10)
	viper.SetDefault("dispatch.timezone", "Asia/Shanghai")

	viper.SetDefault("places.language", "zh-CN")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands values of the form ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// ValidateLLMConfig validates the LLM configuration
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return 0
}
