// internal/services/similarity_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/models"
)

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func productWith(name string, mutate func(*models.Product)) models.Product {
	p := models.Product{Name: name}
	p.ID = uuid.New()
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestScoreWeights(t *testing.T) {
	category := uuid.New()
	designer := uuid.New()
	style := uuid.New()
	period := uuid.New()
	country := uuid.New()

	reference := productWith("Walnut credenza", func(p *models.Product) {
		p.CategoryID = ptr(category)
		p.DesignerID = ptr(designer)
		p.StyleID = ptr(style)
		p.PeriodID = ptr(period)
		p.CountryID = ptr(country)
	})

	tests := []struct {
		name      string
		candidate models.Product
		expected  int
	}{
		{
			name:      "no shared attributes",
			candidate: productWith("Brass sconce", nil),
			expected:  0,
		},
		{
			name: "category only",
			candidate: productWith("Teak credenza", func(p *models.Product) {
				p.CategoryID = ptr(category)
			}),
			expected: 3,
		},
		{
			name: "designer only",
			candidate: productWith("Side table", func(p *models.Product) {
				p.DesignerID = ptr(designer)
			}),
			expected: 3,
		},
		{
			name: "style and period",
			candidate: productWith("Lounge chair", func(p *models.Product) {
				p.StyleID = ptr(style)
				p.PeriodID = ptr(period)
			}),
			expected: 3,
		},
		{
			name: "everything matches",
			candidate: productWith("Matching credenza", func(p *models.Product) {
				p.CategoryID = ptr(category)
				p.DesignerID = ptr(designer)
				p.StyleID = ptr(style)
				p.PeriodID = ptr(period)
				p.CountryID = ptr(country)
			}),
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(&reference, &tt.candidate))
		})
	}
}

func TestScoreDecomposition(t *testing.T) {
	category := uuid.New()

	// Shared category (+3), different designers (0), one shared tag (+2).
	reference := productWith("Reference", func(p *models.Product) {
		p.CategoryID = ptr(category)
		p.DesignerID = ptr(uuid.New())
		p.Tags = []string{"x", "y"}
	})
	candidate := productWith("Candidate", func(p *models.Product) {
		p.CategoryID = ptr(category)
		p.DesignerID = ptr(uuid.New())
		p.Tags = []string{"x", "z"}
	})

	assert.Equal(t, 5, Score(&reference, &candidate))
}

func TestScoreNilForeignKeysNeverMatch(t *testing.T) {
	// Two products with no designer must not score a designer match.
	reference := productWith("Unattributed mirror", nil)
	candidate := productWith("Unattributed lamp", nil)

	assert.Equal(t, 0, Score(&reference, &candidate))
}

func TestScoreTagOverlap(t *testing.T) {
	reference := productWith("Oak desk", func(p *models.Product) {
		p.Tags = []string{"oak", "desk", "restored"}
	})
	candidate := productWith("Oak shelf", func(p *models.Product) {
		p.Tags = []string{"oak", "restored", "shelving"}
	})

	// Two shared tags at 2 points each.
	assert.Equal(t, 4, Score(&reference, &candidate))
}

func TestScoreTagOverlapCountsDuplicatesOnce(t *testing.T) {
	reference := productWith("a", func(p *models.Product) {
		p.Tags = []string{"walnut"}
	})
	candidate := productWith("b", func(p *models.Product) {
		p.Tags = []string{"walnut", "walnut"}
	})

	assert.Equal(t, 2, Score(&reference, &candidate))
}

func TestScoreColorOverlap(t *testing.T) {
	red := models.Color{Name: "Red"}
	red.ID = uuid.New()
	blue := models.Color{Name: "Blue"}
	blue.ID = uuid.New()

	reference := productWith("Red and blue rug", func(p *models.Product) {
		p.Colors = []models.Color{red, blue}
	})
	candidate := productWith("Red chair", func(p *models.Product) {
		p.Colors = []models.Color{red}
	})

	assert.Equal(t, 2, Score(&reference, &candidate))
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	category := uuid.New()
	designer := uuid.New()

	reference := productWith("Reference", func(p *models.Product) {
		p.CategoryID = ptr(category)
		p.DesignerID = ptr(designer)
	})

	weak := productWith("Weak match", nil)
	medium := productWith("Medium match", func(p *models.Product) {
		p.CategoryID = ptr(category)
	})
	strong := productWith("Strong match", func(p *models.Product) {
		p.CategoryID = ptr(category)
		p.DesignerID = ptr(designer)
	})

	ranked := Rank(&reference, []models.Product{weak, medium, strong}, 10)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Strong match", ranked[0].Name)
	assert.Equal(t, 6, ranked[0].Score)
	assert.Equal(t, "Medium match", ranked[1].Name)
	assert.Equal(t, "Weak match", ranked[2].Name)
}

func TestRankTruncatesToLimit(t *testing.T) {
	reference := productWith("Reference", nil)

	candidates := make([]models.Product, 5)
	for i := range candidates {
		candidates[i] = productWith("Candidate", nil)
	}

	ranked := Rank(&reference, candidates, 3)
	assert.Len(t, ranked, 3)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	category := uuid.New()

	reference := productWith("Reference", func(p *models.Product) {
		p.CategoryID = ptr(category)
	})

	first := productWith("First", func(p *models.Product) {
		p.CategoryID = ptr(category)
	})
	second := productWith("Second", func(p *models.Product) {
		p.CategoryID = ptr(category)
	})

	ranked := Rank(&reference, []models.Product{first, second}, 10)

	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
}

func TestRankNeverEmitsReference(t *testing.T) {
	// Pool construction excludes the reference; ranking must not smuggle
	// it back in.
	reference := productWith("Reference", nil)
	candidates := []models.Product{
		productWith("A", nil),
		productWith("B", nil),
	}

	ranked := Rank(&reference, candidates, 10)
	for _, r := range ranked {
		assert.NotEqual(t, reference.ID, r.ID)
	}
}

func TestRankZeroScoresStillRank(t *testing.T) {
	reference := productWith("Reference", nil)
	candidate := productWith("Unrelated", nil)

	ranked := Rank(&reference, []models.Product{candidate}, 10)

	assert.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].Score)
}
