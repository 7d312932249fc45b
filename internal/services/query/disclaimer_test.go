package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsDisclaimer(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "plain answer",
			text:     "Drink plenty of water and rest.",
			expected: false,
		},
		{
			name:     "mentions consulting",
			text:     "You should consult your doctor about this.",
			expected: true,
		},
		{
			name:     "mentions a healthcare professional",
			text:     "See a Healthcare Professional if symptoms persist.",
			expected: true,
		},
		{
			name:     "carries the full disclaimer",
			text:     "Answer text." + Disclaimer,
			expected: true,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsDisclaimer(tt.text))
		})
	}
}

func TestEnsureDisclaimer(t *testing.T) {
	t.Run("appends when absent", func(t *testing.T) {
		out := EnsureDisclaimer("Drink plenty of water.")
		assert.True(t, strings.HasSuffix(out, Disclaimer))
		assert.Equal(t, 1, strings.Count(out, Disclaimer))
	})

	t.Run("leaves existing disclaimer untouched", func(t *testing.T) {
		in := "Drink plenty of water." + Disclaimer
		out := EnsureDisclaimer(in)
		assert.Equal(t, in, out)
		assert.Equal(t, 1, strings.Count(out, Disclaimer))
	})

	t.Run("does not duplicate on repeated application", func(t *testing.T) {
		out := EnsureDisclaimer(EnsureDisclaimer("Drink plenty of water."))
		assert.Equal(t, 1, strings.Count(out, Disclaimer))
	})
}
