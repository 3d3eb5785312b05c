package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/services"
	"github.com/EugeniaBD/AIWriteCheck/internal/interfaces/http/middleware"
)

type AnalysisHandler struct {
	service  services.AnalysisService
	exporter services.Exporter
}

func NewAnalysisHandler(service services.AnalysisService, exporter services.Exporter) *AnalysisHandler {
	return &AnalysisHandler{
		service:  service,
		exporter: exporter,
	}
}

type submitAnalysisRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" binding:"required"`
}

func (h *AnalysisHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	var req submitAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_REQUEST", "message": "text is required"})
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), &services.SubmitRequest{
		OwnerID: userID,
		Title:   req.Title,
		Text:    req.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *AnalysisHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	sub, err := h.service.GetSubmission(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *AnalysisHandler) Revise(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	var patch models.AnalysisPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_REQUEST", "message": "invalid revision payload"})
		return
	}

	sub, err := h.service.Revise(c.Request.Context(), c.Param("id"), userID, &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *AnalysisHandler) Export(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Login required"})
		return
	}

	sub, err := h.service.GetSubmission(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exporter.Filename(sub)))

	if err := h.exporter.Export(c.Writer, sub); err != nil {
		respondError(c, err)
	}
}
