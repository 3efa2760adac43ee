// internal/services/inquiry_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/clock"
	"github.com/warehouse414/catalog-backend/internal/models"
)

func TestHoldExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(48*time.Hour), HoldExpiry(now, 48))
	assert.Equal(t, now.Add(72*time.Hour), HoldExpiry(now, 72))
}

func TestHoldExpiryWithMockClock(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)

	expiry := HoldExpiry(clk.Now(), 48)
	assert.Equal(t, start.Add(48*time.Hour), expiry)

	// One hour before expiry the hold is still live.
	clk.Advance(47 * time.Hour)
	assert.True(t, clk.Now().Before(expiry))

	// Past the duration it has lapsed.
	clk.Advance(2 * time.Hour)
	assert.True(t, expiry.Before(clk.Now()))
}

func TestDecorateHoldsFlagsLapsedHolds(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	lapsed := models.ProductHold{
		CustomerName: "Ada",
		ExpiresAt:    now.Add(-time.Hour),
	}
	live := models.ProductHold{
		CustomerName: "Grace",
		ExpiresAt:    now.Add(time.Hour),
	}

	views := decorateHolds([]models.ProductHold{lapsed, live}, now)

	assert.Len(t, views, 2)
	assert.True(t, views[0].Expired)
	assert.Equal(t, "Ada", views[0].CustomerName)
	assert.False(t, views[1].Expired)
	assert.Equal(t, "Grace", views[1].CustomerName)
}

func TestParseIntSetting(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		expected int
	}{
		{"valid value", "72", 48, 72},
		{"non-numeric falls back", "two days", 48, 48},
		{"empty falls back", "", 48, 48},
		{"zero falls back", "0", 48, 48},
		{"negative falls back", "-6", 48, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIntSetting(tt.value, tt.fallback))
		})
	}
}
