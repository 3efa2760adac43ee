// internal/handlers/attribute.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// AttributeHandler is the admin CRUD surface over the eight lookup tables.
// The :type route parameter selects the table, so one handler set covers
// designers through colors.
type AttributeHandler struct {
	attributeService *services.AttributeService
}

func NewAttributeHandler(attributeService *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

func attributeType(c *gin.Context) (models.AttributeType, bool) {
	t := models.AttributeType(c.Param("type"))
	if !t.Valid() {
		utils.BadRequestResponse(c, "Unknown attribute type", nil)
		return "", false
	}
	return t, true
}

// GET /admin/attributes/:type
func (h *AttributeHandler) List(c *gin.Context) {
	t, ok := attributeType(c)
	if !ok {
		return
	}

	values, err := h.attributeService.List(t)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, values)
}

// POST /admin/attributes/:type
func (h *AttributeHandler) Create(c *gin.Context) {
	t, ok := attributeType(c)
	if !ok {
		return
	}

	var req services.AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	entity, err := h.attributeService.Create(t, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, entity)
}

// PUT /admin/attributes/:type/:id
func (h *AttributeHandler) Update(c *gin.Context) {
	t, ok := attributeType(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid attribute ID", nil)
		return
	}

	var req services.AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	entity, err := h.attributeService.Update(t, id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, entity)
}

// DELETE /admin/attributes/:type/:id
func (h *AttributeHandler) Delete(c *gin.Context) {
	t, ok := attributeType(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid attribute ID", nil)
		return
	}

	if err := h.attributeService.Delete(t, id); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// POST /admin/designers/import
func (h *AttributeHandler) BulkImportDesigners(c *gin.Context) {
	var req struct {
		Designers []services.DesignerImport `json:"designers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	result, err := h.attributeService.BulkImportDesigners(req.Designers)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}
