package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restomenu/internal/config"
	"restomenu/internal/middleware"
	"restomenu/internal/modules/booking"
	"restomenu/internal/modules/catalog"
	"restomenu/internal/modules/pricing"
	"restomenu/internal/pkg/response"
	"restomenu/internal/repository"
)

// Setup wires repositories, services and handlers onto r under /api.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	bookLimit, err := middleware.RateLimit(cfg.BookingRateLimit)
	if err != nil {
		return err
	}

	r.Use(
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	catalogService := catalog.NewService(categoryRepo, subcategoryRepo, itemRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	pricingService := pricing.NewService(itemRepo, pricing.NewTaxResolver(categoryRepo, subcategoryRepo), loc)
	pricingHandler := pricing.NewHandler(pricingService)

	bookingService := booking.NewService(itemRepo, bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"status": "ok"})
		})

		catalogHandler.RegisterRoutes(api)
		pricingHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api, bookLimit)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})
	return nil
}
