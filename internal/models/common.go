// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusOnHold    ProductStatus = "on_hold"
	ProductStatusSold      ProductStatus = "sold"
	ProductStatusInventory ProductStatus = "inventory"
)

// ListableStatuses are the statuses visible on the storefront and eligible
// for the similar-products feed. Inventory pieces stay back-office only.
var ListableStatuses = []ProductStatus{
	ProductStatusAvailable,
	ProductStatusOnHold,
	ProductStatusSold,
}

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusOnHold, ProductStatusSold, ProductStatusInventory:
		return true
	}
	return false
}

type AttributeType string

const (
	AttributeTypeDesigner    AttributeType = "designers"
	AttributeTypeMaker       AttributeType = "makers"
	AttributeTypeCategory    AttributeType = "categories"
	AttributeTypeSubcategory AttributeType = "subcategories"
	AttributeTypeStyle       AttributeType = "styles"
	AttributeTypePeriod      AttributeType = "periods"
	AttributeTypeCountry     AttributeType = "countries"
	AttributeTypeColor       AttributeType = "colors"
)

func (t AttributeType) Valid() bool {
	switch t {
	case AttributeTypeDesigner, AttributeTypeMaker, AttributeTypeCategory,
		AttributeTypeSubcategory, AttributeTypeStyle, AttributeTypePeriod,
		AttributeTypeCountry, AttributeTypeColor:
		return true
	}
	return false
}
