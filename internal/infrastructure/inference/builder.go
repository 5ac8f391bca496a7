package inference

import (
	"github.com/rs/zerolog"

	"lingkod-server/services/assistant-api/internal/config"
)

// BuildChain assembles the provider chain from configuration once at startup.
// Names listed in the order but missing credentials, and names with no known
// adapter, are skipped without counting as failures. A disabled AI feature
// yields an empty chain.
func BuildChain(cfg *config.Config, log zerolog.Logger) *Chain {
	providers := make([]Provider, 0, len(cfg.AIProviderOrder))
	if !cfg.AIEnabled {
		return NewChain(providers, cfg.AIRequestTimeout, log)
	}

	for _, name := range cfg.AIProviderOrder {
		switch name {
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				log.Info().Str("provider", name).Msg("provider not configured, skipping")
				continue
			}
			providers = append(providers, NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL))
		case "groq":
			if cfg.GroqAPIKey == "" {
				log.Info().Str("provider", name).Msg("provider not configured, skipping")
				continue
			}
			providers = append(providers, NewCompatProvider("groq", cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL))
		case "openai":
			if cfg.OpenAIAPIKey == "" {
				log.Info().Str("provider", name).Msg("provider not configured, skipping")
				continue
			}
			providers = append(providers, NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel))
		default:
			log.Warn().Str("provider", name).Msg("unknown provider name in chain order, skipping")
		}
	}

	return NewChain(providers, cfg.AIRequestTimeout, log)
}
