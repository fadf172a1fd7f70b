package chat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("Error returns formatted message", func(t *testing.T) {
		tests := []struct {
			name     string
			err      *Error
			expected string
		}{
			{
				name:     "without cause",
				err:      NewConfigurationError("missing API key", nil),
				expected: "missing API key",
			},
			{
				name:     "with cause",
				err:      NewConnectionError("open stream", 401, errors.New("invalid api key")),
				expected: "open stream: invalid api key",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, tt.err.Error())
			})
		}
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewConnectionError("open stream", 0, cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("constructors set category", func(t *testing.T) {
		assert.Equal(t, ErrorConfiguration, NewConfigurationError("x", nil).Category())
		assert.Equal(t, ErrorConnection, NewConnectionError("x", 500, nil).Category())
		assert.Equal(t, ErrorMalformedRequest, NewMalformedRequestError("x", nil).Category())
	})
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewConnectionError("open stream", 503, nil))

	tests := []struct {
		name          string
		err           error
		configuration bool
		connection    bool
		malformed     bool
		status        int
	}{
		{"configuration", NewConfigurationError("x", nil), true, false, false, 0},
		{"connection", NewConnectionError("x", 401, nil), false, true, false, 401},
		{"wrapped connection", wrapped, false, true, false, 503},
		{"malformed", NewMalformedRequestError("x", nil), false, false, true, 0},
		{"plain error", errors.New("boom"), false, false, false, 0},
		{"nil", nil, false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.configuration, IsConfiguration(tt.err))
			assert.Equal(t, tt.connection, IsConnection(tt.err))
			assert.Equal(t, tt.malformed, IsMalformedRequest(tt.err))
			assert.Equal(t, tt.status, StatusCodeOf(tt.err))
		})
	}
}
