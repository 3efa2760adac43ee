// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func float(f float64) *float64 {
	return &f
}

func TestProductDimensions(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			name:     "nothing set",
			product:  Product{},
			expected: "",
		},
		{
			name: "all fields",
			product: Product{
				ProductWidth:  float(30),
				ProductHeight: float(28.5),
				ProductDepth:  float(24),
				ProductWeight: float(42),
			},
			expected: `30"W x 28.5"H x 24"D, 42 lbs`,
		},
		{
			name: "weight only",
			product: Product{
				ProductWeight: float(12.25),
			},
			expected: "12.25 lbs",
		},
		{
			name: "width and depth without height",
			product: Product{
				ProductWidth: float(60),
				ProductDepth: float(18),
			},
			expected: `60"W x 18"D`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.ProductDimensions())
		})
	}
}

func TestBoxDimensions(t *testing.T) {
	p := Product{
		BoxWidth:  float(34),
		BoxHeight: float(32),
		BoxDepth:  float(28),
		BoxWeight: float(55),
	}

	assert.Equal(t, `34"W x 32"H x 28"D, 55 lbs`, p.BoxDimensions())
}

func TestTrimNumberDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "30", trimNumber(30.0))
	assert.Equal(t, "28.5", trimNumber(28.50))
	assert.Equal(t, "12.25", trimNumber(12.25))
}

func TestHasColor(t *testing.T) {
	red := Color{Name: "Red"}
	red.ID = uuid.New()

	p := Product{Colors: []Color{red}}

	assert.True(t, p.HasColor(red.ID))
	assert.False(t, p.HasColor(uuid.New()))
}

func TestColorIDs(t *testing.T) {
	red := Color{Name: "Red"}
	red.ID = uuid.New()
	blue := Color{Name: "Blue"}
	blue.ID = uuid.New()

	p := Product{Colors: []Color{red, blue}}

	assert.Equal(t, []uuid.UUID{red.ID, blue.ID}, p.ColorIDs())

	empty := Product{}
	assert.Empty(t, empty.ColorIDs())
}
