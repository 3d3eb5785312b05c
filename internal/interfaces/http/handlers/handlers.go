package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// respondError translates typed service outcomes into stable error codes.
// This is the only layer that turns errors into display messages.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrTextTooShort):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "TEXT_TOO_SHORT",
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrQuotaExhausted):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "QUOTA_EXHAUSTED",
			"message": "You have used all submissions for this billing period. Upgrade your plan to continue.",
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "NOT_FOUND",
			"message": "Submission not found",
		})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "FORBIDDEN",
			"message": "You can only access your own submissions",
		})
	case errors.Is(err, models.ErrScoringFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "SCORING_FAILED",
			"message": "Failed to analyze text. Please try again.",
		})
	case errors.Is(err, models.ErrPersistenceFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "PERSISTENCE_FAILED",
			"message": "Failed to save your submission. Please try again.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "INTERNAL",
			"message": "Something went wrong",
		})
	}
}
