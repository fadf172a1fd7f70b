package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleConstants(t *testing.T) {
	assert.Equal(t, Role("user"), RoleUser)
	assert.Equal(t, Role("system"), RoleSystem)
}

func TestProviders(t *testing.T) {
	for _, p := range Providers() {
		assert.True(t, p.Supported(), p.String())
	}
	assert.Len(t, Providers(), 5)

	tests := []struct {
		provider  Provider
		supported bool
	}{
		{ProviderOpenAI, true},
		{ProviderOpenRouter, true},
		{"", false},
		{"OpenAI", false},
		{"mistral", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			assert.Equal(t, tt.supported, tt.provider.Supported())
		})
	}
}
