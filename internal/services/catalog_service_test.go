// internal/services/catalog_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/models"
)

func TestFeaturedCacheKeySharesInvalidationPrefix(t *testing.T) {
	// Admin writes invalidate by prefix; every limit variant of the
	// featured key must fall under it or stale entries survive edits.
	for _, limit := range []int{1, 8, 50} {
		key := featuredCacheKey(limit)
		assert.True(t, strings.HasPrefix(key, featuredCachePrefix), key)
	}

	assert.Equal(t, "catalog:featured:8", featuredCacheKey(8))
}

func TestFilterByColor(t *testing.T) {
	red := models.Color{Name: "Red"}
	red.ID = uuid.New()
	blue := models.Color{Name: "Blue"}
	blue.ID = uuid.New()

	redChair := productWith("Red chair", func(p *models.Product) {
		p.Colors = []models.Color{red}
	})
	blueLamp := productWith("Blue lamp", func(p *models.Product) {
		p.Colors = []models.Color{blue}
	})
	redBlueRug := productWith("Red and blue rug", func(p *models.Product) {
		p.Colors = []models.Color{red, blue}
	})
	uncolored := productWith("Raw steel shelf", nil)

	products := []models.Product{redChair, blueLamp, redBlueRug, uncolored}

	t.Run("keeps only matching products", func(t *testing.T) {
		filtered := FilterByColor(products, red.ID)

		assert.Len(t, filtered, 2)
		assert.Equal(t, "Red chair", filtered[0].Name)
		assert.Equal(t, "Red and blue rug", filtered[1].Name)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		filtered := FilterByColor(products, uuid.New())

		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		filtered := FilterByColor(nil, red.ID)

		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}
