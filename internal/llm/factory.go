package llm

import (
	"context"
	"fmt"

	"github.com/rahulm/learnpath/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		groqCfg := cfg.Groq
		groqCfg.Timeout = cfg.Timeout
		base, err = NewGroqProvider(groqCfg)
	case "openai":
		oaiCfg := cfg.OpenAI
		oaiCfg.Timeout = cfg.Timeout
		base, err = NewOpenAIProvider(oaiCfg)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> logging -> base.
	// A nil eventRepo skips event logging (stateless tools).
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(base, cfg.Provider, eventRepo)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from LEARNPATH_* env configuration,
// falling back to discovery of bare provider API keys.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
