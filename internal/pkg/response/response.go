package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"restomenu/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// StatusFor maps an error classification onto an HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation, apperr.KindInvalidPricingConfig, apperr.KindBusinessRule:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the envelope for err, hiding internals of unclassified faults.
func FromError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	Error(c, StatusFor(appErr.Kind), appErr.Code, appErr.Message)
}
