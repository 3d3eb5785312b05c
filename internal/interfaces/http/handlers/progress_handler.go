package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/services"
	"github.com/EugeniaBD/AIWriteCheck/internal/interfaces/http/middleware"
)

type ProgressHandler struct {
	service services.ProgressService
}

func NewProgressHandler(service services.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	filter, err := models.ParseSubmissionFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_FILTER",
			"message": "filter must be one of: all, high-ai, low-ai, high-score, updated",
		})
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	subs, err := h.service.History(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if subs == nil {
		subs = []*models.Submission{}
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":     summary,
		"filter":      filter,
		"submissions": subs,
	})
}
