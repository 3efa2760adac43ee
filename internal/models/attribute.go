// internal/models/attribute.go
package models

import "github.com/google/uuid"

// Attribute entities are the admin-managed lookup tables products reference.
// Each carries a name plus a URL-safe slug, unique within its own table.

type Designer struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null"`
	Slug  string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	About string `json:"about,omitempty" gorm:"type:text"`
}

type Maker struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
}

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex;not null"`

	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID"`
}

type Subcategory struct {
	BaseModel
	Name       string     `json:"name" gorm:"size:255;not null"`
	Slug       string     `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	CategoryID *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

type Style struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
}

type Period struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
}

type Country struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Code string `json:"code,omitempty" gorm:"size:2"`
}

type Color struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null"`
	Slug    string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	HexCode string `json:"hex_code,omitempty" gorm:"size:7"`
}
