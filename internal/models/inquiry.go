// internal/models/inquiry.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer-submitted records. None of these carry payment details; the
// dealer follows up by email or phone.

type ProductHold struct {
	BaseModel
	ProductID         uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerName      string    `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail     string    `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone     string    `json:"customer_phone,omitempty" gorm:"size:64"`
	HoldDurationHours int       `json:"hold_duration_hours" gorm:"not null"`
	ExpiresAt         time.Time `json:"expires_at" gorm:"not null;index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Expired reports whether the hold has lapsed at the given instant.
func (h *ProductHold) Expired(now time.Time) bool {
	return h.ExpiresAt.Before(now)
}

type Offer struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerName  string    `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail string    `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone string    `json:"customer_phone,omitempty" gorm:"size:64"`
	OfferAmount   float64   `json:"offer_amount" gorm:"type:decimal(10,2);not null"`
	Message       string    `json:"message,omitempty" gorm:"type:text"`
	IsRead        bool      `json:"is_read" gorm:"default:false;index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

type PurchaseInquiry struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerName  string    `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail string    `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone string    `json:"customer_phone,omitempty" gorm:"size:64"`
	Message       string    `json:"message,omitempty" gorm:"type:text"`
	IsRead        bool      `json:"is_read" gorm:"default:false;index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

type SpecSheetDownload struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerName  string    `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail string    `json:"customer_email" gorm:"size:255;not null"`
	IncludePrice  bool      `json:"include_price" gorm:"default:true"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
