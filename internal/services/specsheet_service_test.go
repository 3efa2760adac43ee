// internal/services/specsheet_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/models"
)

func TestFormatPrice(t *testing.T) {
	price := 2450.0

	assert.Equal(t, "$2450.00 USD", FormatPrice(&price, true))
	assert.Equal(t, "Price on request", FormatPrice(&price, false))
	assert.Equal(t, "Price on request", FormatPrice(nil, true))
	assert.Equal(t, "Price on request", FormatPrice(nil, false))
}

func TestSpecSheetRender(t *testing.T) {
	svc := NewSpecSheetService(nil)

	price := 1800.0
	width := 30.0
	height := 28.5

	product := productWith("Walnut credenza", func(p *models.Product) {
		p.SKU = "WC-104"
		p.Price = &price
		p.ProductWidth = &width
		p.ProductHeight = &height
		p.Materials = "Walnut, brass"
		p.Designer = &models.Designer{Name: "Finn Juhl"}
	})

	t.Run("with price", func(t *testing.T) {
		sheet, err := svc.render(&product, true)
		assert.NoError(t, err)

		html := string(sheet)
		assert.Contains(t, html, "Walnut credenza")
		assert.Contains(t, html, "WC-104")
		assert.Contains(t, html, "$1800.00 USD")
		assert.Contains(t, html, "Finn Juhl")
		assert.Contains(t, html, "30&#34;W x 28.5&#34;H")
		assert.Contains(t, html, "Walnut, brass")
	})

	t.Run("without price", func(t *testing.T) {
		sheet, err := svc.render(&product, false)
		assert.NoError(t, err)

		html := string(sheet)
		assert.NotContains(t, html, "$1800.00")
		assert.Contains(t, html, "Price on request")
	})

	t.Run("attribution stands in for missing designer", func(t *testing.T) {
		attributed := productWith("Brass sconce", func(p *models.Product) {
			p.DesignerAttribution = "In the manner of Gio Ponti"
		})

		sheet, err := svc.render(&attributed, true)
		assert.NoError(t, err)
		assert.Contains(t, string(sheet), "In the manner of Gio Ponti")
	})
}
