// internal/handlers/inquiry.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// InquiryHandler exposes the customer-facing hold/offer/inquiry submissions
// and their admin listings.
type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// POST /holds
func (h *InquiryHandler) PlaceHold(c *gin.Context) {
	var req services.PlaceHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	hold, err := h.inquiryService.PlaceHold(&req)
	if err != nil {
		switch err.Error() {
		case "product not found":
			utils.NotFoundResponse(c, "Product")
		case "product is not available for hold":
			utils.ConflictResponse(c, err.Error())
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, hold)
}

// POST /offers
func (h *InquiryHandler) SubmitOffer(c *gin.Context) {
	var req services.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	offer, err := h.inquiryService.SubmitOffer(&req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, offer)
}

// POST /purchase-inquiries
func (h *InquiryHandler) SubmitPurchaseInquiry(c *gin.Context) {
	var req services.PurchaseInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	inquiry, err := h.inquiryService.SubmitPurchaseInquiry(&req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, inquiry)
}

// Admin routes

// GET /admin/holds
func (h *InquiryHandler) GetHolds(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	holds, total, err := h.inquiryService.ListHolds(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(holds, total, params))
}

// DELETE /admin/holds/:id
func (h *InquiryHandler) ReleaseHold(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid hold ID", nil)
		return
	}

	if err := h.inquiryService.ReleaseHold(id); err != nil {
		if err.Error() == "hold not found" {
			utils.NotFoundResponse(c, "Hold")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"released": id})
}

// GET /admin/offers
func (h *InquiryHandler) GetOffers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	offers, total, err := h.inquiryService.ListOffers(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(offers, total, params))
}

// PUT /admin/offers/:id/read
func (h *InquiryHandler) MarkOfferRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID", nil)
		return
	}

	if err := h.inquiryService.MarkOfferRead(id); err != nil {
		if err.Error() == "offer not found" {
			utils.NotFoundResponse(c, "Offer")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"read": id})
}

// GET /admin/purchase-inquiries
func (h *InquiryHandler) GetPurchaseInquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryService.ListPurchaseInquiries(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(inquiries, total, params))
}

// PUT /admin/purchase-inquiries/:id/read
func (h *InquiryHandler) MarkPurchaseInquiryRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inquiry ID", nil)
		return
	}

	if err := h.inquiryService.MarkPurchaseInquiryRead(id); err != nil {
		if err.Error() == "purchase inquiry not found" {
			utils.NotFoundResponse(c, "Purchase inquiry")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"read": id})
}
