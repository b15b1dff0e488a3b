package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantCode int
	}{
		{
			name:     "unauthorized",
			err:      errors.New("status 401 Unauthorized"),
			wantType: ErrorTypeAuth,
			wantCode: 401,
		},
		{
			name:     "invalid api key",
			err:      errors.New("invalid api key provided"),
			wantType: ErrorTypeAuth,
		},
		{
			name:     "model missing",
			err:      errors.New("the model 'gpt-9' does not exist"),
			wantType: ErrorTypeModel,
		},
		{
			name:     "endpoint 404",
			err:      errors.New("status 404 not found"),
			wantType: ErrorTypeEndpoint,
			wantCode: 404,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp: connection refused"),
			wantType: ErrorTypeEndpoint,
		},
		{
			name:     "timeout",
			err:      errors.New("context deadline exceeded"),
			wantType: ErrorTypeEndpoint,
		},
		{
			name:     "rate limited",
			err:      errors.New("429 rate limit exceeded"),
			wantType: ErrorTypeUnknown,
			wantCode: 429,
		},
		{
			name:     "server error",
			err:      errors.New("status 503 service unavailable"),
			wantType: ErrorTypeEndpoint,
			wantCode: 503,
		},
		{
			name:     "unknown",
			err:      errors.New("something odd"),
			wantType: ErrorTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantType, got.Type)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, got.StatusCode)
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyErrorNil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyErrorPassthrough(t *testing.T) {
	orig := &Error{Type: ErrorTypeAuth, Message: "authentication failed"}
	wrapped := fmt.Errorf("generate: %w", orig)

	got := ClassifyError(wrapped)
	assert.Same(t, orig, got)
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, (&Error{Type: ErrorTypeAuth}).IsRetryable())
	assert.False(t, (&Error{Type: ErrorTypeModel}).IsRetryable())
	assert.False(t, (&Error{Type: ErrorTypeEndpoint, StatusCode: 404}).IsRetryable())
	assert.True(t, (&Error{Type: ErrorTypeEndpoint, StatusCode: 503}).IsRetryable())
	assert.True(t, (&Error{Type: ErrorTypeEndpoint, Message: "request timeout"}).IsRetryable())
	assert.True(t, (&Error{Type: ErrorTypeUnknown, StatusCode: 429}).IsRetryable())
	assert.False(t, (&Error{Type: ErrorTypeUnknown}).IsRetryable())
}

func TestGetErrorType(t *testing.T) {
	err := &Error{Type: ErrorTypeModel, Message: "model not found"}
	assert.Equal(t, ErrorTypeModel, GetErrorType(fmt.Errorf("wrap: %w", err)))
	assert.Equal(t, ErrorTypeUnknown, GetErrorType(errors.New("plain")))
}
