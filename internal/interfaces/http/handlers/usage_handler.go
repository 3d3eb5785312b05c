package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/services"
	"github.com/EugeniaBD/AIWriteCheck/internal/interfaces/http/middleware"
)

type UsageHandler struct {
	service services.UsageService
}

func NewUsageHandler(service services.UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

func (h *UsageHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	usage, err := h.service.UsageFor(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tier":             usage.Tier,
		"period_start":     usage.PeriodStart,
		"submission_count": usage.SubmissionsInPeriod,
		"quota_remaining":  usage.QuotaRemainingDisplay,
		"unlimited":        usage.Unlimited(),
	})
}
