// internal/services/similarity_service.go
package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/models"
)

// Relevance weights for the "you might also like" feed. Category and
// designer matches dominate; tag and color overlap count per shared value.
const (
	weightCategory = 3
	weightDesigner = 3
	weightStyle    = 2
	weightPeriod   = 1
	weightCountry  = 1
	weightTag      = 2
	weightColor    = 2
)

// SimilarityService ranks a candidate pool against a reference product.
// Scoring is a pure in-memory computation; only the pool fetch touches
// the store.
type SimilarityService struct {
	db        *gorm.DB
	poolLimit int
}

// ScoredProduct decorates a product with its transient relevance score.
// The score exists only for the duration of one ranking and is exposed
// for debugging; it is never persisted.
type ScoredProduct struct {
	models.Product
	Score int `json:"_score"`
}

func NewSimilarityService(db *gorm.DB, poolLimit int) *SimilarityService {
	return &SimilarityService{db: db, poolLimit: poolLimit}
}

// SimilarProducts returns the top-N most similar listable products. A nil
// reference short-circuits to an empty slice; that is a precondition of
// the detail page, not an error. Candidates that score zero still rank,
// so the feed does not go empty just because nothing strongly matches.
func (s *SimilarityService) SimilarProducts(ctx context.Context, reference *models.Product, limit int) ([]ScoredProduct, error) {
	if reference == nil {
		return []ScoredProduct{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	candidates, err := s.candidatePool(ctx, reference)
	if err != nil {
		return nil, err
	}

	return Rank(reference, candidates, limit), nil
}

// candidatePool fetches listable products other than the reference,
// narrowed to likely matches when the reference has a category, designer,
// or style, and capped so scoring stays cheap. Fetch order is
// created_at desc, which is also the tie-break order.
func (s *SimilarityService) candidatePool(ctx context.Context, reference *models.Product) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).
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
		Where("id <> ?", reference.ID).
		Where("status IN ?", models.ListableStatuses).
		Order("created_at DESC").
		Limit(s.poolLimit)

	var group *gorm.DB
	if reference.CategoryID != nil {
		group = s.db.Where("category_id = ?", *reference.CategoryID)
	}
	if reference.DesignerID != nil {
		if group == nil {
			group = s.db.Where("designer_id = ?", *reference.DesignerID)
		} else {
			group = group.Or("designer_id = ?", *reference.DesignerID)
		}
	}
	if reference.StyleID != nil {
		if group == nil {
			group = s.db.Where("style_id = ?", *reference.StyleID)
		} else {
			group = group.Or("style_id = ?", *reference.StyleID)
		}
	}
	if group != nil {
		query = query.Where(group)
	}

	var candidates []models.Product
	if err := query.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch similar candidates: %w", err)
	}

	return candidates, nil
}

// Rank scores every candidate against the reference and returns them in
// descending score order, truncated to limit. The sort is stable, so tied
// candidates keep the pool's fetch order.
func Rank(reference *models.Product, candidates []models.Product, limit int) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredProduct{Product: c, Score: Score(reference, &c)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Score computes the weighted relevance of candidate relative to reference.
// A nil foreign key never matches: two products both lacking a designer do
// not score a designer match.
func Score(reference, candidate *models.Product) int {
	score := 0

	if refMatch(reference.CategoryID, candidate.CategoryID) {
		score += weightCategory
	}
	if refMatch(reference.DesignerID, candidate.DesignerID) {
		score += weightDesigner
	}
	if refMatch(reference.StyleID, candidate.StyleID) {
		score += weightStyle
	}
	if refMatch(reference.PeriodID, candidate.PeriodID) {
		score += weightPeriod
	}
	if refMatch(reference.CountryID, candidate.CountryID) {
		score += weightCountry
	}

	score += weightTag * tagOverlap(reference.Tags, candidate.Tags)
	score += weightColor * colorOverlap(reference.ColorIDs(), candidate.ColorIDs())

	return score
}

func refMatch(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func tagOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}

	overlap := 0
	for _, t := range b {
		if _, ok := set[t]; ok {
			overlap++
			delete(set, t)
		}
	}
	return overlap
}

func colorOverlap(a, b []uuid.UUID) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}

	overlap := 0
	for _, id := range b {
		if _, ok := set[id]; ok {
			overlap++
			delete(set, id)
		}
	}
	return overlap
}
