package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity-api/internal/domain/domainerr"
)

// statusFor is the only place domain error kinds become HTTP statuses.
func statusFor(k domainerr.Kind) int {
	switch k {
	case domainerr.KindValidation:
		return http.StatusBadRequest
	case domainerr.KindConflict:
		return http.StatusConflict
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders domain errors with their own message and hides
// everything else behind fallback.
func writeError(c *gin.Context, logger *zap.Logger, op, fallback string, err error) {
	var de *domainerr.Error
	if errors.As(err, &de) {
		c.JSON(statusFor(de.Kind()), gin.H{
			"error": de.Message(),
			"kind":  de.Kind().String(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	logger.Error(op+" error", zap.Error(err))
}
