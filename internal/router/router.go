// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/warehouse414/catalog-backend/internal/cache"
	"github.com/warehouse414/catalog-backend/internal/clock"
	"github.com/warehouse414/catalog-backend/internal/config"
	"github.com/warehouse414/catalog-backend/internal/handlers"
	"github.com/warehouse414/catalog-backend/internal/middleware"
	"github.com/warehouse414/catalog-backend/internal/services"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, c *cache.Cache) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage service: ", err)
	}
	attributeService := services.NewAttributeService(db)
	settingsService := services.NewSettingsService(db)
	catalogService := services.NewCatalogService(db, attributeService, c, cfg.Catalog.FilterFailClosed)
	similarityService := services.NewSimilarityService(db, cfg.Catalog.SimilarPoolLimit)
	productService := services.NewProductService(db, storageService, c)
	inquiryService := services.NewInquiryService(db, settingsService, clock.NewRealClock(), cfg.Catalog.HoldDurationHours)
	specSheetService := services.NewSpecSheetService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService, similarityService, attributeService,
		cfg.Catalog.SimilarLimit, cfg.Catalog.FeaturedLimit)
	productHandler := handlers.NewProductHandler(productService, storageService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	specSheetHandler := handlers.NewSpecSheetHandler(specSheetService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Public storefront
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/featured", catalogHandler.GetFeaturedProducts)
			products.GET("/:slug", catalogHandler.GetProduct)
			products.GET("/:slug/similar", catalogHandler.GetSimilarProducts)
		}

		v1.GET("/designers/:slug", catalogHandler.GetDesigner)
		v1.GET("/attributes/:type", catalogHandler.GetAttributes)

		// Public submissions
		submissions := v1.Group("")
		submissions.Use(middleware.SubmissionRateLimit())
		{
			submissions.POST("/holds", inquiryHandler.PlaceHold)
			submissions.POST("/offers", inquiryHandler.SubmitOffer)
			submissions.POST("/purchase-inquiries", inquiryHandler.SubmitPurchaseInquiry)
			submissions.POST("/spec-sheets", specSheetHandler.GenerateSpecSheet)
		}

		// Back-office
		admin := v1.Group("/admin")
		{
			admin.POST("/login", middleware.AuthRateLimit(), authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("/me", authHandler.Me)

				protected.GET("/products", productHandler.GetProducts)
				protected.POST("/products", productHandler.CreateProduct)
				protected.PUT("/products/:id", productHandler.UpdateProduct)
				protected.DELETE("/products/:id", productHandler.DeleteProduct)
				protected.PUT("/products/:id/colors", productHandler.SetProductColors)
				protected.POST("/products/:id/images", middleware.UploadRateLimit(), productHandler.UploadProductImage)
				protected.DELETE("/products/:id/images/:imageId", productHandler.DeleteProductImage)
				protected.PUT("/products/:id/images/order", productHandler.ReorderProductImages)

				protected.GET("/attributes/:type", attributeHandler.List)
				protected.POST("/attributes/:type", attributeHandler.Create)
				protected.PUT("/attributes/:type/:id", attributeHandler.Update)
				protected.DELETE("/attributes/:type/:id", attributeHandler.Delete)
				protected.POST("/designers/import", attributeHandler.BulkImportDesigners)

				protected.GET("/holds", inquiryHandler.GetHolds)
				protected.DELETE("/holds/:id", inquiryHandler.ReleaseHold)
				protected.GET("/offers", inquiryHandler.GetOffers)
				protected.PUT("/offers/:id/read", inquiryHandler.MarkOfferRead)
				protected.GET("/purchase-inquiries", inquiryHandler.GetPurchaseInquiries)
				protected.PUT("/purchase-inquiries/:id/read", inquiryHandler.MarkPurchaseInquiryRead)
				protected.GET("/spec-sheet-downloads", specSheetHandler.GetDownloads)

				protected.GET("/settings", settingsHandler.GetSettings)
				protected.PUT("/settings/:key", settingsHandler.UpdateSetting)
			}
		}
	}

	return r
}
