package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restomenu/internal/pkg/response"
	"restomenu/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the booking endpoints. Extra middleware (rate
// limiting) wraps only the write path.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, bookLimit ...gin.HandlerFunc) {
	rg.GET("/items/:id/availability", h.GetAvailability)

	book := append(append([]gin.HandlerFunc{}, bookLimit...), h.CreateBooking)
	rg.POST("/items/:id/book", book...)
}

// GetAvailability handles GET /items/:id/availability?date=YYYY-MM-DD
func (h *Handler) GetAvailability(c *gin.Context) {
	data, err := h.service.GetAvailability(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// CreateBooking handles POST /items/:id/book
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", errs)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}
