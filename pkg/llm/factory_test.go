package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClientProviders(t *testing.T) {
	logger := zap.NewNop()

	t.Run("defaults to openai", func(t *testing.T) {
		client, err := NewClient(&Config{Model: "gpt-4o", APIKey: "k"}, logger)
		require.NoError(t, err)
		assert.Equal(t, "openai", client.GetProvider())
		assert.Equal(t, "gpt-4o", client.GetModel())
	})

	t.Run("anthropic", func(t *testing.T) {
		client, err := NewClient(&Config{Provider: "anthropic", Model: "claude-sonnet-4-0", APIKey: "k"}, logger)
		require.NoError(t, err)
		assert.Equal(t, "anthropic", client.GetProvider())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewClient(&Config{Provider: "llamafarm", Model: "m"}, logger)
		assert.Error(t, err)
	})

	t.Run("missing model", func(t *testing.T) {
		_, err := NewClient(&Config{Provider: "openai"}, logger)
		assert.Error(t, err)
	})

	t.Run("anthropic requires key", func(t *testing.T) {
		_, err := NewClient(&Config{Provider: "anthropic", Model: "claude-sonnet-4-0"}, logger)
		assert.Error(t, err)
	})
}
