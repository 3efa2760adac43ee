// internal/services/attribute_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// AttributeService manages the lookup tables products reference: designers,
// makers, categories, subcategories, styles, periods, countries, colors.
// The back-office edits all eight through the same form shape, so the
// service exposes a uniform surface keyed by AttributeType.
type AttributeService struct {
	db *gorm.DB
}

type AttributeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Slug string `json:"slug" validate:"omitempty,slug"`

	// Entity-specific optional fields; ignored by types that lack them.
	About      string     `json:"about,omitempty"`
	HexCode    string     `json:"hex_code,omitempty" validate:"omitempty,hex_color"`
	Code       string     `json:"code,omitempty" validate:"omitempty,len=2"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

type DesignerImport struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	About string `json:"about,omitempty"`
}

type BulkImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func NewAttributeService(db *gorm.DB) *AttributeService {
	return &AttributeService{db: db}
}

var attributeTables = map[models.AttributeType]string{
	models.AttributeTypeDesigner:    "designers",
	models.AttributeTypeMaker:       "makers",
	models.AttributeTypeCategory:    "categories",
	models.AttributeTypeSubcategory: "subcategories",
	models.AttributeTypeStyle:       "styles",
	models.AttributeTypePeriod:      "periods",
	models.AttributeTypeCountry:     "countries",
	models.AttributeTypeColor:       "colors",
}

// ResolveSlug performs the single-row slug lookup the filter compiler
// depends on. The boolean distinguishes "no such slug" (not an error)
// from a store failure.
func (s *AttributeService) ResolveSlug(t models.AttributeType, slug string) (uuid.UUID, bool, error) {
	table, ok := attributeTables[t]
	if !ok {
		return uuid.Nil, false, fmt.Errorf("unknown attribute type %q", t)
	}

	var id uuid.UUID
	err := s.db.Table(table).Select("id").Where("slug = ?", slug).Take(&id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to resolve %s slug: %w", t, err)
	}

	return id, true, nil
}

// newModel returns an empty model value for the attribute type, used so the
// CRUD paths share one code shape.
func (s *AttributeService) newModel(t models.AttributeType) (interface{}, error) {
	switch t {
	case models.AttributeTypeDesigner:
		return &models.Designer{}, nil
	case models.AttributeTypeMaker:
		return &models.Maker{}, nil
	case models.AttributeTypeCategory:
		return &models.Category{}, nil
	case models.AttributeTypeSubcategory:
		return &models.Subcategory{}, nil
	case models.AttributeTypeStyle:
		return &models.Style{}, nil
	case models.AttributeTypePeriod:
		return &models.Period{}, nil
	case models.AttributeTypeCountry:
		return &models.Country{}, nil
	case models.AttributeTypeColor:
		return &models.Color{}, nil
	}
	return nil, fmt.Errorf("unknown attribute type %q", t)
}

func (s *AttributeService) List(t models.AttributeType) (interface{}, error) {
	switch t {
	case models.AttributeTypeDesigner:
		var out []models.Designer
		return out, s.db.Order("name").Find(&out).Error
	case models.AttributeTypeMaker:
		var out []models.Maker
		return out, s.db.Order("name").Find(&out).Error
	case models.AttributeTypeCategory:
		var out []models.Category
		return out, s.db.Preload("Subcategories").Order("name").Find(&out).Error
	case models.AttributeTypeSubcategory:
		var out []models.Subcategory
		return out, s.db.Preload("Category").Order("name").Find(&out).Error
	case models.AttributeTypeStyle:
		var out []models.Style
		return out, s.db.Order("name").Find(&out).Error
	case models.AttributeTypePeriod:
		var out []models.Period
		return out, s.db.Order("name").Find(&out).Error
	case models.AttributeTypeCountry:
		var out []models.Country
		return out, s.db.Order("name").Find(&out).Error
	case models.AttributeTypeColor:
		var out []models.Color
		return out, s.db.Order("name").Find(&out).Error
	}
	return nil, fmt.Errorf("unknown attribute type %q", t)
}

func (s *AttributeService) Create(t models.AttributeType, req *AttributeRequest) (interface{}, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	entity, err := s.buildEntity(t, req, slug)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("slug %q already exists", slug)
		}
		return nil, fmt.Errorf("failed to create %s: %w", t, err)
	}

	return entity, nil
}

func (s *AttributeService) Update(t models.AttributeType, id uuid.UUID, req *AttributeRequest) (interface{}, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entity, err := s.newModel(t)
	if err != nil {
		return nil, err
	}

	if err := s.db.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s not found", t)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{"name": req.Name}
	if req.Slug != "" {
		updates["slug"] = req.Slug
	}
	switch t {
	case models.AttributeTypeDesigner:
		updates["about"] = req.About
	case models.AttributeTypeColor:
		updates["hex_code"] = req.HexCode
	case models.AttributeTypeCountry:
		updates["code"] = req.Code
	case models.AttributeTypeSubcategory:
		updates["category_id"] = req.CategoryID
	}

	if err := s.db.Model(entity).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", t, err)
	}

	return entity, nil
}

// Delete removes the attribute row. Products keep their reference; the
// store's foreign-key policy is the only guard against dangling ids.
func (s *AttributeService) Delete(t models.AttributeType, id uuid.UUID) error {
	entity, err := s.newModel(t)
	if err != nil {
		return err
	}

	result := s.db.Delete(entity, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", t, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s not found", t)
	}

	return nil
}

func (s *AttributeService) buildEntity(t models.AttributeType, req *AttributeRequest, slug string) (interface{}, error) {
	switch t {
	case models.AttributeTypeDesigner:
		return &models.Designer{Name: req.Name, Slug: slug, About: req.About}, nil
	case models.AttributeTypeMaker:
		return &models.Maker{Name: req.Name, Slug: slug}, nil
	case models.AttributeTypeCategory:
		return &models.Category{Name: req.Name, Slug: slug}, nil
	case models.AttributeTypeSubcategory:
		return &models.Subcategory{Name: req.Name, Slug: slug, CategoryID: req.CategoryID}, nil
	case models.AttributeTypeStyle:
		return &models.Style{Name: req.Name, Slug: slug}, nil
	case models.AttributeTypePeriod:
		return &models.Period{Name: req.Name, Slug: slug}, nil
	case models.AttributeTypeCountry:
		return &models.Country{Name: req.Name, Slug: slug, Code: req.Code}, nil
	case models.AttributeTypeColor:
		return &models.Color{Name: req.Name, Slug: slug, HexCode: req.HexCode}, nil
	}
	return nil, fmt.Errorf("unknown attribute type %q", t)
}

// BulkImportDesigners upserts designers on slug conflict, skipping rows
// missing a name or slug. Used by the back-office CSV import.
func (s *AttributeService) BulkImportDesigners(imports []DesignerImport) (*BulkImportResult, error) {
	valid := make([]models.Designer, 0, len(imports))
	skipped := 0

	for _, d := range imports {
		if d.Name == "" || d.Slug == "" {
			skipped++
			continue
		}
		valid = append(valid, models.Designer{
			Name:  d.Name,
			Slug:  d.Slug,
			About: d.About,
		})
	}

	if len(valid) > 0 {
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "about", "updated_at"}),
		}).Create(&valid).Error
		if err != nil {
			return nil, fmt.Errorf("failed to import designers: %w", err)
		}
	}

	return &BulkImportResult{Imported: len(valid), Skipped: skipped}, nil
}

// GetDesignerBySlug backs the public designer detail page.
func (s *AttributeService) GetDesignerBySlug(slug string) (*models.Designer, error) {
	var designer models.Designer
	if err := s.db.Where("slug = ?", slug).First(&designer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("designer not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &designer, nil
}
