// internal/handlers/specsheet.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// SpecSheetHandler serves the printable product spec sheet. The customer
// trades a name and email for the document; admins can review who asked.
type SpecSheetHandler struct {
	specSheetService *services.SpecSheetService
}

func NewSpecSheetHandler(specSheetService *services.SpecSheetService) *SpecSheetHandler {
	return &SpecSheetHandler{specSheetService: specSheetService}
}

// POST /spec-sheets
func (h *SpecSheetHandler) GenerateSpecSheet(c *gin.Context) {
	var req services.SpecSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sheet, _, err := h.specSheetService.GenerateSpecSheet(&req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", sheet)
}

// GET /admin/spec-sheet-downloads
func (h *SpecSheetHandler) GetDownloads(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	downloads, total, err := h.specSheetService.ListDownloads(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(downloads, total, params))
}
