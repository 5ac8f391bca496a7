package inference

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrChainExhausted is returned when every configured provider failed. It is
// the only signal callers need to route to the static fallback tier.
var ErrChainExhausted = errors.New("all inference providers failed")

// Result carries a successful generation and the provider that produced it.
type Result struct {
	Text     string
	Provider string
}

// Chain tries providers strictly in order and stops at the first success.
// Sequential on purpose: one success is enough and concurrent calls would
// waste quota.
type Chain struct {
	providers []Provider
	timeout   time.Duration
	log       zerolog.Logger
}

func NewChain(providers []Provider, timeout time.Duration, log zerolog.Logger) *Chain {
	return &Chain{providers: providers, timeout: timeout, log: log}
}

// Empty reports whether the chain has no configured providers.
func (c *Chain) Empty() bool {
	return len(c.providers) == 0
}

// Providers returns the configured provider names in chain order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Generate walks the chain. An error, a timeout, or a blank answer all count
// as the same failure and advance to the next provider. When the last provider
// fails, ErrChainExhausted is returned.
func (c *Chain) Generate(ctx context.Context, query string, contextText string) (*Result, error) {
	if len(c.providers) == 0 {
		return nil, ErrChainExhausted
	}

	for _, provider := range c.providers {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		text, err := provider.Generate(callCtx, query, contextText)
		cancel()

		if err != nil {
			c.log.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Msg("inference provider failed, advancing chain")
			continue
		}
		if strings.TrimSpace(text) == "" {
			c.log.Warn().
				Str("provider", provider.Name()).
				Msg("inference provider returned blank answer, advancing chain")
			continue
		}

		return &Result{Text: text, Provider: provider.Name()}, nil
	}

	return nil, ErrChainExhausted
}
