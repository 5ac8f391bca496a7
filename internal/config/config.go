package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton so infrastructure code can reach the active config without
// threading it through every constructor.
var globalConfig *Config

// Config holds all environment backed configuration for assistant-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// AI provider chain. Order is the fallback order; names with no configured
	// credentials are skipped when the chain is assembled.
	AIEnabled        bool          `env:"AI_ENABLED" envDefault:"true"`
	AIProviderOrder  []string      `env:"AI_PROVIDER_ORDER" envSeparator:"," envDefault:"gemini,groq,openai"`
	AIRequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"30s"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqModel   string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Knowledge base
	FAQRefreshIntervalMinutes int  `env:"FAQ_REFRESH_INTERVAL_MINUTES" envDefault:"15"`
	FAQRefreshEnabled         bool `env:"FAQ_REFRESH_ENABLED" envDefault:"true"`

	// Observability / Logging
	ServiceName string `env:"SERVICE_NAME" envDefault:"assistant-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	order := make([]string, 0, len(cfg.AIProviderOrder))
	for _, name := range cfg.AIProviderOrder {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			order = append(order, name)
		}
	}
	cfg.AIProviderOrder = order

	if cfg.AIRequestTimeout <= 0 {
		return nil, fmt.Errorf("AI_REQUEST_TIMEOUT must be positive, got %s", cfg.AIRequestTimeout)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
