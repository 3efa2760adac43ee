// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// CatalogHandler serves the public storefront reads. Nothing here requires
// authentication.
type CatalogHandler struct {
	catalogService    *services.CatalogService
	similarityService *services.SimilarityService
	attributeService  *services.AttributeService
	similarLimit      int
	featuredLimit     int
}

func NewCatalogHandler(
	catalogService *services.CatalogService,
	similarityService *services.SimilarityService,
	attributeService *services.AttributeService,
	similarLimit, featuredLimit int,
) *CatalogHandler {
	return &CatalogHandler{
		catalogService:    catalogService,
		similarityService: similarityService,
		attributeService:  attributeService,
		similarLimit:      similarLimit,
		featuredLimit:     featuredLimit,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	filters := services.FilterState{
		Designer:    c.Query("designer"),
		Maker:       c.Query("maker"),
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Style:       c.Query("style"),
		Period:      c.Query("period"),
		Country:     c.Query("country"),
		Color:       c.Query("color"),
		Search:      c.Query("search"),
	}

	if yearFromStr := c.Query("year_from"); yearFromStr != "" {
		if yearFrom, err := strconv.Atoi(yearFromStr); err == nil {
			filters.YearFrom = &yearFrom
		}
	}
	if yearToStr := c.Query("year_to"); yearToStr != "" {
		if yearTo, err := strconv.Atoi(yearToStr); err == nil {
			filters.YearTo = &yearTo
		}
	}

	result, err := h.catalogService.SearchProducts(c.Request.Context(), filters)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, result.Products, gin.H{
		"count":      len(result.Products),
		"unresolved": result.Unresolved,
	})
}

// GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	limit := h.featuredLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	products, err := h.catalogService.GetFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /products/:slug/similar
func (h *CatalogHandler) GetSimilarProducts(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	limit := h.similarLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	similar, err := h.similarityService.SimilarProducts(c.Request.Context(), product, limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, similar)
}

// GET /designers/:slug
func (h *CatalogHandler) GetDesigner(c *gin.Context) {
	designer, err := h.attributeService.GetDesignerBySlug(c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, "Designer")
		return
	}

	products, err := h.catalogService.GetDesignerProducts(c.Request.Context(), designer.ID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"designer": designer,
		"products": products,
	})
}

// GET /attributes/:type serves the filter sidebar's option lists.
func (h *CatalogHandler) GetAttributes(c *gin.Context) {
	t := models.AttributeType(c.Param("type"))

	values, err := h.attributeService.List(t)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, values)
}
