// internal/services/specsheet_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// SpecSheetService renders the printable spec sheet for a product and logs
// who downloaded it. The sheet is plain HTML; customers print or save it
// from the browser.
type SpecSheetService struct {
	db   *gorm.DB
	tmpl *template.Template
}

type SpecSheetRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	IncludePrice  bool      `json:"include_price"`
}

type specSheetData struct {
	Product           *models.Product
	Price             string
	ProductDimensions string
	BoxDimensions     string
	Designer          string
	Maker             string
	Category          string
	Style             string
	Period            string
	Country           string
	Colors            string
	Tags              string
}

const specSheetTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Product.Name}} — Spec Sheet</title>
<style>
body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; color: #1a1a1a; }
h1 { font-size: 1.6rem; margin-bottom: 0; }
.sku { color: #777; font-size: 0.9rem; }
img { max-width: 100%; margin: 1rem 0; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
td { padding: 0.4rem 0; border-bottom: 1px solid #e5e5e5; vertical-align: top; }
td.label { width: 10rem; color: #555; }
.price { font-size: 1.2rem; margin-top: 1rem; }
.notes { margin-top: 1.5rem; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.Product.Name}}</h1>
{{if .Product.SKU}}<div class="sku">SKU {{.Product.SKU}}</div>{{end}}
{{if .Product.FeaturedImageURL}}<img src="{{.Product.FeaturedImageURL}}" alt="{{.Product.Name}}">{{end}}
{{if .Price}}<div class="price">{{.Price}}</div>{{end}}
<table>
{{if .Designer}}<tr><td class="label">Designer</td><td>{{.Designer}}</td></tr>{{end}}
{{if .Maker}}<tr><td class="label">Maker</td><td>{{.Maker}}</td></tr>{{end}}
{{if .Category}}<tr><td class="label">Category</td><td>{{.Category}}</td></tr>{{end}}
{{if .Style}}<tr><td class="label">Style</td><td>{{.Style}}</td></tr>{{end}}
{{if .Period}}<tr><td class="label">Period</td><td>{{.Period}}</td></tr>{{end}}
{{if .Country}}<tr><td class="label">Country</td><td>{{.Country}}</td></tr>{{end}}
{{if .Product.YearCreated}}<tr><td class="label">Year</td><td>{{.Product.YearCreated}}</td></tr>{{end}}
{{if .Product.Materials}}<tr><td class="label">Materials</td><td>{{.Product.Materials}}</td></tr>{{end}}
{{if .Colors}}<tr><td class="label">Colors</td><td>{{.Colors}}</td></tr>{{end}}
{{if .ProductDimensions}}<tr><td class="label">Dimensions</td><td>{{.ProductDimensions}}</td></tr>{{end}}
{{if .BoxDimensions}}<tr><td class="label">Boxed</td><td>{{.BoxDimensions}}</td></tr>{{end}}
{{if .Product.DimensionNotes}}<tr><td class="label">Dimension notes</td><td>{{.Product.DimensionNotes}}</td></tr>{{end}}
{{if .Tags}}<tr><td class="label">Tags</td><td>{{.Tags}}</td></tr>{{end}}
</table>
{{if .Product.ShortDescription}}<div class="notes">{{.Product.ShortDescription}}</div>{{end}}
</body>
</html>`

func NewSpecSheetService(db *gorm.DB) *SpecSheetService {
	return &SpecSheetService{
		db:   db,
		tmpl: template.Must(template.New("specsheet").Parse(specSheetTemplate)),
	}
}

// GenerateSpecSheet records the download and returns the rendered sheet.
// The record is written first; a render failure after a logged download is
// acceptable, a silent download is not.
func (s *SpecSheetService) GenerateSpecSheet(req *SpecSheetRequest) ([]byte, *models.SpecSheetDownload, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	err := s.db.
		Preload("Designer").
		Preload("Maker").
		Preload("Category").
		Preload("Style").
		Preload("Period").
		Preload("Country").
		Preload("Colors").
		First(&product, "id = ?", req.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("product not found")
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	download := &models.SpecSheetDownload{
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		IncludePrice:  req.IncludePrice,
	}
	if err := s.db.Create(download).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to record spec sheet download: %w", err)
	}

	sheet, err := s.render(&product, req.IncludePrice)
	if err != nil {
		return nil, nil, err
	}

	return sheet, download, nil
}

func (s *SpecSheetService) render(product *models.Product, includePrice bool) ([]byte, error) {
	data := specSheetData{
		Product:           product,
		Price:             FormatPrice(product.Price, includePrice),
		ProductDimensions: product.ProductDimensions(),
		BoxDimensions:     product.BoxDimensions(),
	}

	if product.Designer != nil {
		data.Designer = product.Designer.Name
	} else if product.DesignerAttribution != "" {
		data.Designer = product.DesignerAttribution
	}
	if product.Maker != nil {
		data.Maker = product.Maker.Name
	} else if product.MakerAttribution != "" {
		data.Maker = product.MakerAttribution
	}
	if product.Category != nil {
		data.Category = product.Category.Name
	}
	if product.Style != nil {
		data.Style = product.Style.Name
	}
	if product.Period != nil {
		data.Period = product.Period.Name
	} else if product.PeriodAttribution != "" {
		data.Period = product.PeriodAttribution
	}
	if product.Country != nil {
		data.Country = product.Country.Name
	}

	for i, c := range product.Colors {
		if i > 0 {
			data.Colors += ", "
		}
		data.Colors += c.Name
	}
	for i, t := range product.Tags {
		if i > 0 {
			data.Tags += ", "
		}
		data.Tags += t
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render spec sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatPrice renders the price line. A nil price, or a sheet requested
// without prices, reads "Price on request".
func FormatPrice(price *float64, includePrice bool) string {
	if !includePrice || price == nil {
		return "Price on request"
	}
	return fmt.Sprintf("$%.2f USD", *price)
}

func (s *SpecSheetService) ListDownloads(params utils.PaginationParams) ([]models.SpecSheetDownload, int64, error) {
	query := s.db.Model(&models.SpecSheetDownload{}).Preload("Product")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count spec sheet downloads: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var downloads []models.SpecSheetDownload
	if err := query.Find(&downloads).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch spec sheet downloads: %w", err)
	}

	return downloads, total, nil
}
