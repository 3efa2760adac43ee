// internal/services/inquiry_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/clock"
	"github.com/warehouse414/catalog-backend/internal/models"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// InquiryService handles the customer-initiated flows: holds, offers, and
// purchase inquiries. None of them take payment; they queue follow-up work
// for the dealer.
type InquiryService struct {
	db               *gorm.DB
	settings         *SettingsService
	clk              clock.Clock
	defaultHoldHours int
}

type PlaceHoldRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty" validate:"omitempty,max=64"`
}

type SubmitOfferRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty" validate:"omitempty,max=64"`
	OfferAmount   float64   `json:"offer_amount" validate:"required,gt=0"`
	Message       string    `json:"message,omitempty"`
}

type PurchaseInquiryRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty" validate:"omitempty,max=64"`
	Message       string    `json:"message,omitempty"`
}

func NewInquiryService(db *gorm.DB, settings *SettingsService, clk clock.Clock, defaultHoldHours int) *InquiryService {
	return &InquiryService{
		db:               db,
		settings:         settings,
		clk:              clk,
		defaultHoldHours: defaultHoldHours,
	}
}

// PlaceHold reserves an available product. The hold insert and the status
// flip run in one transaction with a row lock, so two customers racing for
// the same piece cannot both hold it, and a failed status update cannot
// strand a hold row.
func (s *InquiryService) PlaceHold(req *PlaceHoldRequest) (*models.ProductHold, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hours := s.settings.GetInt(models.SettingHoldDurationHours, s.defaultHoldHours)

	hold := &models.ProductHold{
		ProductID:         req.ProductID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		HoldDurationHours: hours,
		ExpiresAt:         HoldExpiry(s.clk.Now(), hours),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if product.Status != models.ProductStatusAvailable {
			return errors.New("product is not available for hold")
		}

		if err := tx.Create(hold).Error; err != nil {
			return fmt.Errorf("failed to create hold: %w", err)
		}

		if err := tx.Model(&product).Update("status", models.ProductStatusOnHold).Error; err != nil {
			return fmt.Errorf("failed to update product status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Product").First(hold, "id = ?", hold.ID)
	return hold, nil
}

// HoldExpiry computes when a hold placed at now lapses.
func HoldExpiry(now time.Time, durationHours int) time.Time {
	return now.Add(time.Duration(durationHours) * time.Hour)
}

func (s *InquiryService) SubmitOffer(req *SubmitOfferRequest) (*models.Offer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.verifyProductExists(req.ProductID); err != nil {
		return nil, err
	}

	offer := &models.Offer{
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OfferAmount:   req.OfferAmount,
		Message:       req.Message,
	}

	if err := s.db.Create(offer).Error; err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	return offer, nil
}

func (s *InquiryService) SubmitPurchaseInquiry(req *PurchaseInquiryRequest) (*models.PurchaseInquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.verifyProductExists(req.ProductID); err != nil {
		return nil, err
	}

	inquiry := &models.PurchaseInquiry{
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase inquiry: %w", err)
	}

	return inquiry, nil
}

func (s *InquiryService) verifyProductExists(productID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return errors.New("product not found")
	}
	return nil
}

// Admin listings

// HoldView decorates a hold with whether it has lapsed at read time, so the
// back-office list can flag holds awaiting the next expiry sweep.
type HoldView struct {
	models.ProductHold
	Expired bool `json:"expired"`
}

func decorateHolds(holds []models.ProductHold, now time.Time) []HoldView {
	views := make([]HoldView, len(holds))
	for i, h := range holds {
		views[i] = HoldView{ProductHold: h, Expired: h.Expired(now)}
	}
	return views
}

func (s *InquiryService) ListHolds(params utils.PaginationParams) ([]HoldView, int64, error) {
	query := s.db.Model(&models.ProductHold{}).Preload("Product")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count holds: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "expires_at"})
	query = utils.ApplyPagination(query, params)

	var holds []models.ProductHold
	if err := query.Find(&holds).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch holds: %w", err)
	}

	return decorateHolds(holds, s.clk.Now()), total, nil
}

func (s *InquiryService) ListOffers(params utils.PaginationParams) ([]models.Offer, int64, error) {
	query := s.db.Model(&models.Offer{}).Preload("Product")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "offer_amount"})
	query = utils.ApplyPagination(query, params)

	var offers []models.Offer
	if err := query.Find(&offers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch offers: %w", err)
	}

	return offers, total, nil
}

func (s *InquiryService) ListPurchaseInquiries(params utils.PaginationParams) ([]models.PurchaseInquiry, int64, error) {
	query := s.db.Model(&models.PurchaseInquiry{}).Preload("Product")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchase inquiries: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var inquiries []models.PurchaseInquiry
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch purchase inquiries: %w", err)
	}

	return inquiries, total, nil
}

// ReleaseHold deletes a hold and reverts its product to available. Used by
// the back-office when a customer passes on a piece.
func (s *InquiryService) ReleaseHold(holdID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var hold models.ProductHold
		if err := tx.First(&hold, "id = ?", holdID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("hold not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		err := tx.Model(&models.Product{}).
			Where("id = ? AND status = ?", hold.ProductID, models.ProductStatusOnHold).
			Update("status", models.ProductStatusAvailable).Error
		if err != nil {
			return fmt.Errorf("failed to release product: %w", err)
		}

		if err := tx.Delete(&hold).Error; err != nil {
			return fmt.Errorf("failed to delete hold: %w", err)
		}

		return nil
	})
}

// ReleaseExpiredHolds reverts every product whose hold has lapsed and
// removes the hold rows. Invoked from the maintenance command, never from
// the request path. Only products still on hold are touched; a piece the
// dealer marked sold in the meantime keeps its status.
func (s *InquiryService) ReleaseExpiredHolds() (int, error) {
	var expired []models.ProductHold
	if err := s.db.Where("expires_at < ?", s.clk.Now()).Find(&expired).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch expired holds: %w", err)
	}

	released := 0
	for _, hold := range expired {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			err := tx.Model(&models.Product{}).
				Where("id = ? AND status = ?", hold.ProductID, models.ProductStatusOnHold).
				Update("status", models.ProductStatusAvailable).Error
			if err != nil {
				return err
			}
			return tx.Delete(&models.ProductHold{}, "id = ?", hold.ID).Error
		})
		if err != nil {
			return released, fmt.Errorf("failed to release hold %s: %w", hold.ID, err)
		}
		released++
	}

	return released, nil
}

func (s *InquiryService) MarkOfferRead(offerID uuid.UUID) error {
	result := s.db.Model(&models.Offer{}).Where("id = ?", offerID).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark offer read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("offer not found")
	}
	return nil
}

func (s *InquiryService) MarkPurchaseInquiryRead(inquiryID uuid.UUID) error {
	result := s.db.Model(&models.PurchaseInquiry{}).Where("id = ?", inquiryID).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark purchase inquiry read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("purchase inquiry not found")
	}
	return nil
}
