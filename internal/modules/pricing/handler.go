package pricing

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"restomenu/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/items/:id/price", h.GetPrice)
}

// GetPrice handles GET /items/:id/price?at=&time=&durationHours=&addons=
func (h *Handler) GetPrice(c *gin.Context) {
	var q Query

	if v := c.Query("durationHours"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			response.FromError(c, ErrInvalidQuery.Withf("durationHours must be a number"))
			return
		}
		q.DurationHours = &d
	}

	if v := c.Query("at"); v != "" {
		at, err := parseAt(v, h.service.loc)
		if err != nil {
			response.FromError(c, ErrInvalidQuery.Withf("at must be an ISO 8601 timestamp"))
			return
		}
		q.At = &at
	}

	q.Time = c.Query("time")

	if v := c.Query("addons"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				q.AddonIDs = append(q.AddonIDs, id)
			}
		}
	}

	data, err := h.service.Quote(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// Timestamps without an offset are wall-clock time in the configured zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func parseAt(v string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognised timestamp")
}
