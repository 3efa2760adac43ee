// internal/services/storage_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/config"
)

func storageConfig() *config.Config {
	return &config.Config{
		AWS: config.AWSConfig{
			Region:        "us-east-1",
			S3Bucket:      "warehouse414-product-images",
			CloudFrontURL: "https://cdn.warehouse414.com",
		},
	}
}

// Without credentials the constructor must hand back the local stub, not an
// error; the router treats a construction error as fatal.
func TestNewStorageServiceWithoutCredentials(t *testing.T) {
	svc, err := NewStorageService(storageConfig())

	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestKeyFromURL(t *testing.T) {
	svc, err := NewStorageService(storageConfig())
	assert.NoError(t, err)

	tests := []struct {
		name     string
		url      string
		key      string
		expected bool
	}{
		{
			name:     "cloudfront url",
			url:      "https://cdn.warehouse414.com/products/20250310_abcd1234.jpg",
			key:      "products/20250310_abcd1234.jpg",
			expected: true,
		},
		{
			name:     "bare bucket url",
			url:      "https://warehouse414-product-images.s3.us-east-1.amazonaws.com/products/a.png",
			key:      "products/a.png",
			expected: true,
		},
		{
			name:     "external hotlink",
			url:      "https://example.com/products/a.png",
			expected: false,
		},
		{
			name:     "prefix with no key",
			url:      "https://cdn.warehouse414.com/",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := svc.KeyFromURL(tt.url)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestPublicURLPrefersCloudFront(t *testing.T) {
	svc, err := NewStorageService(storageConfig())
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.warehouse414.com/products/a.jpg", svc.PublicURL("products/a.jpg"))

	cfg := storageConfig()
	cfg.AWS.CloudFrontURL = ""
	bare, err := NewStorageService(cfg)
	assert.NoError(t, err)
	assert.Equal(t,
		"https://warehouse414-product-images.s3.us-east-1.amazonaws.com/products/a.jpg",
		bare.PublicURL("products/a.jpg"))
}
