// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/cache"
	"github.com/warehouse414/catalog-backend/internal/models"
)

// CatalogService answers the public storefront reads. Its main job is the
// filter compiler: turning a sparse set of slug-based selections into a
// store query plus the one constraint (color) the store cannot express.
type CatalogService struct {
	db         *gorm.DB
	attributes *AttributeService
	cache      *cache.Cache
	failClosed bool
}

// FilterState is the storefront's filter sidebar. Every field is optional;
// an empty field means no constraint on that dimension.
type FilterState struct {
	Designer    string `json:"designer,omitempty"`
	Maker       string `json:"maker,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Style       string `json:"style,omitempty"`
	Period      string `json:"period,omitempty"`
	Country     string `json:"country,omitempty"`
	Color       string `json:"color,omitempty"`
	Search      string `json:"search,omitempty"`
	YearFrom    *int   `json:"year_from,omitempty"`
	YearTo      *int   `json:"year_to,omitempty"`
}

// FilterResult carries the filtered, relation-expanded products together
// with any slugs that matched no row. Unresolved slugs are not errors:
// depending on configuration they either drop their constraint (the
// historical behavior) or empty the result set.
type FilterResult struct {
	Products   []models.Product `json:"products"`
	Unresolved []string         `json:"unresolved,omitempty"`
}

func NewCatalogService(db *gorm.DB, attributes *AttributeService, c *cache.Cache, failClosed bool) *CatalogService {
	return &CatalogService{
		db:         db,
		attributes: attributes,
		cache:      c,
		failClosed: failClosed,
	}
}

// slugDimension pairs a filter field with the attribute table that resolves
// it and the product column its id constrains.
type slugDimension struct {
	name   string
	attr   models.AttributeType
	column string
	slug   string
}

func (f *FilterState) slugDimensions() []slugDimension {
	return []slugDimension{
		{"designer", models.AttributeTypeDesigner, "designer_id", f.Designer},
		{"maker", models.AttributeTypeMaker, "maker_id", f.Maker},
		{"category", models.AttributeTypeCategory, "category_id", f.Category},
		{"subcategory", models.AttributeTypeSubcategory, "subcategory_id", f.Subcategory},
		{"style", models.AttributeTypeStyle, "style_id", f.Style},
		{"period", models.AttributeTypePeriod, "period_id", f.Period},
		{"country", models.AttributeTypeCountry, "country_id", f.Country},
	}
}

// SearchProducts compiles the filter state and runs it. All id-backed
// dimensions become conjunctive store-side constraints; the color filter
// crosses the product_colors join and is applied in memory after the fetch.
func (s *CatalogService) SearchProducts(ctx context.Context, filters FilterState) (*FilterResult, error) {
	result := &FilterResult{Products: []models.Product{}}

	query := s.relationExpanded(s.db.WithContext(ctx).Model(&models.Product{})).
		Order("created_at DESC")

	for _, dim := range filters.slugDimensions() {
		if dim.slug == "" {
			continue
		}

		id, found, err := s.attributes.ResolveSlug(dim.attr, dim.slug)
		if err != nil {
			return nil, err
		}
		if !found {
			result.Unresolved = append(result.Unresolved, dim.name)
			continue
		}

		query = query.Where(dim.column+" = ?", id)
	}

	// Color resolves up front so fail-closed can short-circuit before the
	// base query runs.
	var colorID *uuid.UUID
	if filters.Color != "" {
		id, found, err := s.attributes.ResolveSlug(models.AttributeTypeColor, filters.Color)
		if err != nil {
			return nil, err
		}
		if found {
			colorID = &id
		} else {
			result.Unresolved = append(result.Unresolved, "color")
		}
	}

	if s.failClosed && len(result.Unresolved) > 0 {
		return result, nil
	}

	if filters.Search != "" {
		term := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(short_description) LIKE ?", term, term)
	}

	if filters.YearFrom != nil {
		query = query.Where("year_created >= ?", *filters.YearFrom)
	}
	if filters.YearTo != nil {
		query = query.Where("year_created <= ?", *filters.YearTo)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if colorID != nil {
		products = FilterByColor(products, *colorID)
	}

	result.Products = products
	return result, nil
}

// FilterByColor keeps products whose color set contains the given id. The
// many-to-many join keeps this constraint out of the store query.
func FilterByColor(products []models.Product, colorID uuid.UUID) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.HasColor(colorID) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProductBySlug returns one relation-expanded product for the detail page.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.relationExpanded(s.db.WithContext(ctx)).
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

// Featured cache keys share this prefix so admin writes can invalidate
// every limit variant at once.
const featuredCachePrefix = "catalog:featured"

func featuredCacheKey(limit int) string {
	return fmt.Sprintf("%s:%d", featuredCachePrefix, limit)
}

// GetFeaturedProducts returns the newest available pieces for the landing
// page, cached briefly since it renders on every visit.
func (s *CatalogService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	cacheKey := featuredCacheKey(limit)

	var products []models.Product
	if s.cache.GetJSON(ctx, cacheKey, &products) {
		return products, nil
	}

	err := s.relationExpanded(s.db.WithContext(ctx)).
		Where("status = ?", models.ProductStatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	s.cache.SetJSON(ctx, cacheKey, products, 5*time.Minute)
	return products, nil
}

// GetDesignerProducts backs the designer detail page.
func (s *CatalogService) GetDesignerProducts(ctx context.Context, designerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.relationExpanded(s.db.WithContext(ctx)).
		Where("designer_id = ?", designerID).
		Where("status IN ?", models.ListableStatuses).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch designer products: %w", err)
	}

	return products, nil
}

// relationExpanded attaches every sub-object the storefront renders, so one
// query returns products with their attribute references, colors, and
// images in display order.
func (s *CatalogService) relationExpanded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Designer").
		Preload("Maker").
		Preload("Category").
		Preload("Subcategory").
		Preload("Style").
		Preload("Period").
		Preload("Country").
		Preload("Colors").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}
