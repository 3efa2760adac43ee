// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/cache"
	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// ProductService is the back-office side of the catalog: create, edit, and
// retire pieces, manage their colors and images.
type ProductService struct {
	db      *gorm.DB
	storage *StorageService
	cache   *cache.Cache
}

type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=255"`
	Slug             string   `json:"slug" validate:"omitempty,slug"`
	SKU              string   `json:"sku,omitempty" validate:"omitempty,max=64"`
	ShortDescription string   `json:"short_description,omitempty"`
	LongDescription  string   `json:"long_description,omitempty"`
	Materials        string   `json:"materials,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status           string   `json:"status,omitempty"`
	YearCreated      *int     `json:"year_created,omitempty" validate:"omitempty,gte=1000,lte=2100"`

	ProductWidth   *float64 `json:"product_width,omitempty" validate:"omitempty,gt=0"`
	ProductHeight  *float64 `json:"product_height,omitempty" validate:"omitempty,gt=0"`
	ProductDepth   *float64 `json:"product_depth,omitempty" validate:"omitempty,gt=0"`
	ProductWeight  *float64 `json:"product_weight,omitempty" validate:"omitempty,gt=0"`
	BoxWidth       *float64 `json:"box_width,omitempty" validate:"omitempty,gt=0"`
	BoxHeight      *float64 `json:"box_height,omitempty" validate:"omitempty,gt=0"`
	BoxDepth       *float64 `json:"box_depth,omitempty" validate:"omitempty,gt=0"`
	BoxWeight      *float64 `json:"box_weight,omitempty" validate:"omitempty,gt=0"`
	DimensionNotes string   `json:"dimension_notes,omitempty"`

	DesignerID          *uuid.UUID `json:"designer_id,omitempty"`
	DesignerAttribution string     `json:"designer_attribution,omitempty"`
	MakerID             *uuid.UUID `json:"maker_id,omitempty"`
	MakerAttribution    string     `json:"maker_attribution,omitempty"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID       *uuid.UUID `json:"subcategory_id,omitempty"`
	StyleID             *uuid.UUID `json:"style_id,omitempty"`
	PeriodID            *uuid.UUID `json:"period_id,omitempty"`
	PeriodAttribution   string     `json:"period_attribution,omitempty"`
	CountryID           *uuid.UUID `json:"country_id,omitempty"`
	ColorIDs            []uuid.UUID `json:"color_ids,omitempty"`

	FeaturedImageURL string     `json:"featured_image_url,omitempty"`
	FirstdibsURL     string     `json:"firstdibs_url,omitempty" validate:"omitempty,url"`
	ChairishURL      string     `json:"chairish_url,omitempty" validate:"omitempty,url"`
	EbayURL          string     `json:"ebay_url,omitempty" validate:"omitempty,url"`
	Notes            string     `json:"notes,omitempty"`
	GoLiveDate       *time.Time `json:"go_live_date,omitempty"`
}

// UpdateProductRequest uses pointers throughout so an absent field leaves
// the stored value alone while an explicit null/zero clears it.
type UpdateProductRequest struct {
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug             *string   `json:"slug,omitempty" validate:"omitempty,slug"`
	SKU              *string   `json:"sku,omitempty" validate:"omitempty,max=64"`
	ShortDescription *string   `json:"short_description,omitempty"`
	LongDescription  *string   `json:"long_description,omitempty"`
	Materials        *string   `json:"materials,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Price            *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status           *string   `json:"status,omitempty"`
	YearCreated      *int      `json:"year_created,omitempty" validate:"omitempty,gte=1000,lte=2100"`

	ProductWidth   *float64 `json:"product_width,omitempty" validate:"omitempty,gt=0"`
	ProductHeight  *float64 `json:"product_height,omitempty" validate:"omitempty,gt=0"`
	ProductDepth   *float64 `json:"product_depth,omitempty" validate:"omitempty,gt=0"`
	ProductWeight  *float64 `json:"product_weight,omitempty" validate:"omitempty,gt=0"`
	BoxWidth       *float64 `json:"box_width,omitempty" validate:"omitempty,gt=0"`
	BoxHeight      *float64 `json:"box_height,omitempty" validate:"omitempty,gt=0"`
	BoxDepth       *float64 `json:"box_depth,omitempty" validate:"omitempty,gt=0"`
	BoxWeight      *float64 `json:"box_weight,omitempty" validate:"omitempty,gt=0"`
	DimensionNotes *string  `json:"dimension_notes,omitempty"`

	DesignerID          *uuid.UUID `json:"designer_id,omitempty"`
	DesignerAttribution *string    `json:"designer_attribution,omitempty"`
	MakerID             *uuid.UUID `json:"maker_id,omitempty"`
	MakerAttribution    *string    `json:"maker_attribution,omitempty"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID       *uuid.UUID `json:"subcategory_id,omitempty"`
	StyleID             *uuid.UUID `json:"style_id,omitempty"`
	PeriodID            *uuid.UUID `json:"period_id,omitempty"`
	PeriodAttribution   *string    `json:"period_attribution,omitempty"`
	CountryID           *uuid.UUID `json:"country_id,omitempty"`
	ColorIDs            []uuid.UUID `json:"color_ids,omitempty"`

	FeaturedImageURL *string    `json:"featured_image_url,omitempty"`
	FirstdibsURL     *string    `json:"firstdibs_url,omitempty" validate:"omitempty,url"`
	ChairishURL      *string    `json:"chairish_url,omitempty" validate:"omitempty,url"`
	EbayURL          *string    `json:"ebay_url,omitempty" validate:"omitempty,url"`
	Notes            *string    `json:"notes,omitempty"`
	GoLiveDate       *time.Time `json:"go_live_date,omitempty"`
}

type AdminProductSearchParams struct {
	utils.PaginationParams
	Status *models.ProductStatus
}

func NewProductService(db *gorm.DB, storage *StorageService, c *cache.Cache) *ProductService {
	return &ProductService{db: db, storage: storage, cache: c}
}

// invalidateCatalogCache drops the cached storefront reads after any write
// that changes what the storefront renders. Without this a freshly edited
// product would stay stale for the full cache TTL.
func (s *ProductService) invalidateCatalogCache() {
	s.cache.Invalidate(context.Background(), featuredCachePrefix)
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.ProductStatusInventory
	if req.Status != "" {
		status = models.ProductStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status %q", req.Status)
		}
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             slug,
		SKU:              req.SKU,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Materials:        req.Materials,
		Tags:             req.Tags,
		Price:            req.Price,
		Status:           status,
		YearCreated:      req.YearCreated,

		ProductWidth:   req.ProductWidth,
		ProductHeight:  req.ProductHeight,
		ProductDepth:   req.ProductDepth,
		ProductWeight:  req.ProductWeight,
		BoxWidth:       req.BoxWidth,
		BoxHeight:      req.BoxHeight,
		BoxDepth:       req.BoxDepth,
		BoxWeight:      req.BoxWeight,
		DimensionNotes: req.DimensionNotes,

		DesignerID:          req.DesignerID,
		DesignerAttribution: req.DesignerAttribution,
		MakerID:             req.MakerID,
		MakerAttribution:    req.MakerAttribution,
		CategoryID:          req.CategoryID,
		SubcategoryID:       req.SubcategoryID,
		StyleID:             req.StyleID,
		PeriodID:            req.PeriodID,
		PeriodAttribution:   req.PeriodAttribution,
		CountryID:           req.CountryID,

		FeaturedImageURL: req.FeaturedImageURL,
		FirstdibsURL:     req.FirstdibsURL,
		ChairishURL:      req.ChairishURL,
		EbayURL:          req.EbayURL,
		Notes:            req.Notes,
		GoLiveDate:       req.GoLiveDate,
	}

	if err := s.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("slug %q already exists", slug)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if len(req.ColorIDs) > 0 {
		if err := s.SetProductColors(product.ID, req.ColorIDs); err != nil {
			return nil, err
		}
	}

	s.invalidateCatalogCache()
	s.reload(product)
	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}
	setUUID := func(column string, value *uuid.UUID) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("name", req.Name)
	setString("slug", req.Slug)
	setString("sku", req.SKU)
	setString("short_description", req.ShortDescription)
	setString("long_description", req.LongDescription)
	setString("materials", req.Materials)
	setString("dimension_notes", req.DimensionNotes)
	setString("designer_attribution", req.DesignerAttribution)
	setString("maker_attribution", req.MakerAttribution)
	setString("period_attribution", req.PeriodAttribution)
	setString("featured_image_url", req.FeaturedImageURL)
	setString("firstdibs_url", req.FirstdibsURL)
	setString("chairish_url", req.ChairishURL)
	setString("ebay_url", req.EbayURL)
	setString("notes", req.Notes)

	setFloat("price", req.Price)
	setFloat("product_width", req.ProductWidth)
	setFloat("product_height", req.ProductHeight)
	setFloat("product_depth", req.ProductDepth)
	setFloat("product_weight", req.ProductWeight)
	setFloat("box_width", req.BoxWidth)
	setFloat("box_height", req.BoxHeight)
	setFloat("box_depth", req.BoxDepth)
	setFloat("box_weight", req.BoxWeight)

	setUUID("designer_id", req.DesignerID)
	setUUID("maker_id", req.MakerID)
	setUUID("category_id", req.CategoryID)
	setUUID("subcategory_id", req.SubcategoryID)
	setUUID("style_id", req.StyleID)
	setUUID("period_id", req.PeriodID)
	setUUID("country_id", req.CountryID)

	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.YearCreated != nil {
		updates["year_created"] = *req.YearCreated
	}
	if req.GoLiveDate != nil {
		updates["go_live_date"] = *req.GoLiveDate
	}
	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status %q", *req.Status)
		}
		// Admins may set any status; only the hold flow is constrained.
		updates["status"] = status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, errors.New("slug already exists")
			}
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if req.ColorIDs != nil {
		if err := s.SetProductColors(product.ID, req.ColorIDs); err != nil {
			return nil, err
		}
	}

	s.invalidateCatalogCache()
	s.reload(&product)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&product).Association("Colors").Clear(); err != nil {
			return fmt.Errorf("failed to clear colors: %w", err)
		}
		if err := tx.Delete(&models.ProductImage{}, "product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete image rows: %w", err)
		}
		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Blob cleanup is best effort; an orphaned file costs pennies, a
	// failed delete should not resurrect the product.
	for _, img := range product.Images {
		if err := s.storage.DeleteFileByURL(img.ImageURL); err != nil {
			logrus.WithError(err).WithField("url", img.ImageURL).Warn("failed to delete product image from storage")
		}
	}

	s.invalidateCatalogCache()
	return nil
}

func (s *ProductService) SetProductColors(productID uuid.UUID, colorIDs []uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	colors := make([]models.Color, len(colorIDs))
	for i, id := range colorIDs {
		colors[i] = models.Color{BaseModel: models.BaseModel{ID: id}}
	}

	if err := s.db.Model(&product).Association("Colors").Replace(colors); err != nil {
		return fmt.Errorf("failed to set product colors: %w", err)
	}

	s.invalidateCatalogCache()
	return nil
}

func (s *ProductService) ListProducts(params AdminProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Designer").
		Preload("Maker").
		Preload("Category").
		Preload("Subcategory").
		Preload("Style").
		Preload("Colors").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// Image management

func (s *ProductService) AddProductImage(productID uuid.UUID, imageURL, altText string, sortOrder int) (*models.ProductImage, error) {
	if err := s.verifyExists(productID); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: productID,
		ImageURL:  imageURL,
		AltText:   altText,
		SortOrder: sortOrder,
	}

	if err := s.db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	s.invalidateCatalogCache()
	return image, nil
}

func (s *ProductService) DeleteProductImage(imageID uuid.UUID) error {
	var image models.ProductImage
	if err := s.db.First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("image not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}

	if err := s.storage.DeleteFileByURL(image.ImageURL); err != nil {
		logrus.WithError(err).WithField("url", image.ImageURL).Warn("failed to delete image from storage")
	}

	s.invalidateCatalogCache()
	return nil
}

// ReorderProductImages rewrites sort_order to match the given id sequence.
func (s *ProductService) ReorderProductImages(productID uuid.UUID, orderedIDs []uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, imageID := range orderedIDs {
			result := tx.Model(&models.ProductImage{}).
				Where("id = ? AND product_id = ?", imageID, productID).
				Update("sort_order", i)
			if result.Error != nil {
				return fmt.Errorf("failed to reorder images: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("image %s does not belong to product", imageID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCatalogCache()
	return nil
}

func (s *ProductService) verifyExists(productID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (s *ProductService) reload(product *models.Product) {
	s.db.
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
		}).
		First(product, "id = ?", product.ID)
}
