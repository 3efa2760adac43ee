// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Walnut Credenza", "walnut-credenza"},
		{"  Finn Juhl  ", "finn-juhl"},
		{"Chair & Ottoman", "chair-ottoman"},
		{"Mid-Century Modern", "mid-century-modern"},
		{"No. 45 Lounge Chair", "no-45-lounge-chair"},
		{"Éames—style", "ames-style"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
