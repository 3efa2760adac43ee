// internal/models/product.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	SKU              string         `json:"sku,omitempty" gorm:"size:64;index"`
	ShortDescription string         `json:"short_description,omitempty" gorm:"type:text"`
	LongDescription  string         `json:"long_description,omitempty" gorm:"type:text"`
	Materials        string         `json:"materials,omitempty" gorm:"type:text"`
	Tags             pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	Price            *float64       `json:"price,omitempty" gorm:"type:decimal(10,2)"`
	Status           ProductStatus  `json:"status" gorm:"type:varchar(20);default:'inventory';index"`
	YearCreated      *int           `json:"year_created,omitempty" gorm:"index"`

	// Physical dimensions, stored as structured numbers (inches / lbs)
	// rather than formatted text. Display strings are derived.
	ProductWidth   *float64 `json:"product_width,omitempty" gorm:"type:decimal(8,2)"`
	ProductHeight  *float64 `json:"product_height,omitempty" gorm:"type:decimal(8,2)"`
	ProductDepth   *float64 `json:"product_depth,omitempty" gorm:"type:decimal(8,2)"`
	ProductWeight  *float64 `json:"product_weight,omitempty" gorm:"type:decimal(8,2)"`
	BoxWidth       *float64 `json:"box_width,omitempty" gorm:"type:decimal(8,2)"`
	BoxHeight      *float64 `json:"box_height,omitempty" gorm:"type:decimal(8,2)"`
	BoxDepth       *float64 `json:"box_depth,omitempty" gorm:"type:decimal(8,2)"`
	BoxWeight      *float64 `json:"box_weight,omitempty" gorm:"type:decimal(8,2)"`
	DimensionNotes string   `json:"dimension_notes,omitempty" gorm:"type:text"`

	// Attribute references. All optional; deleting an attribute does not
	// cascade, the foreign key policy at the store is the only guard.
	DesignerID          *uuid.UUID `json:"designer_id,omitempty" gorm:"type:uuid;index"`
	DesignerAttribution string     `json:"designer_attribution,omitempty" gorm:"size:255"`
	MakerID             *uuid.UUID `json:"maker_id,omitempty" gorm:"type:uuid;index"`
	MakerAttribution    string     `json:"maker_attribution,omitempty" gorm:"size:255"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`
	SubcategoryID       *uuid.UUID `json:"subcategory_id,omitempty" gorm:"type:uuid;index"`
	StyleID             *uuid.UUID `json:"style_id,omitempty" gorm:"type:uuid;index"`
	PeriodID            *uuid.UUID `json:"period_id,omitempty" gorm:"type:uuid;index"`
	PeriodAttribution   string     `json:"period_attribution,omitempty" gorm:"size:255"`
	CountryID           *uuid.UUID `json:"country_id,omitempty" gorm:"type:uuid;index"`

	FeaturedImageURL string     `json:"featured_image_url,omitempty" gorm:"size:1024"`
	FirstdibsURL     string     `json:"firstdibs_url,omitempty" gorm:"size:1024"`
	ChairishURL      string     `json:"chairish_url,omitempty" gorm:"size:1024"`
	EbayURL          string     `json:"ebay_url,omitempty" gorm:"size:1024"`
	Notes            string     `json:"notes,omitempty" gorm:"type:text"`
	GoLiveDate       *time.Time `json:"go_live_date,omitempty"`

	// Relationships
	Designer    *Designer      `json:"designer,omitempty" gorm:"foreignKey:DesignerID"`
	Maker       *Maker         `json:"maker,omitempty" gorm:"foreignKey:MakerID"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Subcategory *Subcategory   `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Style       *Style         `json:"style,omitempty" gorm:"foreignKey:StyleID"`
	Period      *Period        `json:"period,omitempty" gorm:"foreignKey:PeriodID"`
	Country     *Country       `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Colors      []Color        `json:"colors,omitempty" gorm:"many2many:product_colors"`
	Images      []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ImageURL  string    `json:"image_url" gorm:"size:1024;not null"`
	AltText   string    `json:"alt_text,omitempty" gorm:"size:512"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
}

// ColorIDs returns the set of color ids attached to the product.
func (p *Product) ColorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Colors))
	for _, c := range p.Colors {
		ids = append(ids, c.ID)
	}
	return ids
}

// HasColor reports whether the product carries the given color.
func (p *Product) HasColor(colorID uuid.UUID) bool {
	for _, c := range p.Colors {
		if c.ID == colorID {
			return true
		}
	}
	return false
}

// ProductDimensions renders the structured product dimensions as a display
// string, e.g. `30"W x 28.5"H x 24"D, 42 lbs`. Empty when nothing is set.
func (p *Product) ProductDimensions() string {
	return formatDimensions(p.ProductWidth, p.ProductHeight, p.ProductDepth, p.ProductWeight)
}

// BoxDimensions renders the shipping box dimensions for spec sheets.
func (p *Product) BoxDimensions() string {
	return formatDimensions(p.BoxWidth, p.BoxHeight, p.BoxDepth, p.BoxWeight)
}

func formatDimensions(w, h, d, weight *float64) string {
	var parts []string
	if w != nil {
		parts = append(parts, fmt.Sprintf("%s\"W", trimNumber(*w)))
	}
	if h != nil {
		parts = append(parts, fmt.Sprintf("%s\"H", trimNumber(*h)))
	}
	if d != nil {
		parts = append(parts, fmt.Sprintf("%s\"D", trimNumber(*d)))
	}

	out := strings.Join(parts, " x ")
	if weight != nil {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s lbs", trimNumber(*weight))
	}
	return out
}

func trimNumber(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
