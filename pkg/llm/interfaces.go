// Package llm provides chat-completion clients for the providers the
// assistant can run against.
package llm

import "context"

// LLMClient is the narrow surface the extractor and conversation service
// need. Use this interface for dependency injection to enable mocking in
// tests.
type LLMClient interface {
	// GenerateResponse generates a chat completion for the prompt under the
	// given system message.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetProvider returns the provider name ("openai" or "anthropic").
	GetProvider() string
}

// Ensure both providers implement LLMClient at compile time.
var (
	_ LLMClient = (*OpenAIClient)(nil)
	_ LLMClient = (*AnthropicClient)(nil)
)
