package llm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewClient builds an LLMClient for the configured provider. An empty
// provider defaults to OpenAI so existing deployments keep working.
func NewClient(cfg *Config, logger *zap.Logger) (LLMClient, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "openai":
		return NewOpenAIClient(cfg, logger)
	case "anthropic":
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
