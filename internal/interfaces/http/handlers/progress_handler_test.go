package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

type stubProgressService struct {
	summary    *models.ProgressSummary
	history    []*models.Submission
	lastFilter models.SubmissionFilter
}

func (s *stubProgressService) Summarize(_ context.Context, _ int64) (*models.ProgressSummary, error) {
	return s.summary, nil
}

func (s *stubProgressService) History(_ context.Context, _ int64, filter models.SubmissionFilter) ([]*models.Submission, error) {
	s.lastFilter = filter
	return s.history, nil
}

func newProgressRouter(svc *stubProgressService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/progress", asUser(7), NewProgressHandler(svc).Get)
	return router
}

func TestProgressHandler(t *testing.T) {
	svc := &stubProgressService{
		summary: &models.ProgressSummary{TotalSubmissions: 3, AverageQuality: 8, AverageAIInfluence: 40},
		history: []*models.Submission{sampleSubmission()},
	}
	router := newProgressRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/progress?filter=high-score", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterHighQuality, svc.lastFilter)

	var body struct {
		Summary     models.ProgressSummary `json:"summary"`
		Filter      string                 `json:"filter"`
		Submissions []*models.Submission   `json:"submissions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Summary.TotalSubmissions)
	assert.Equal(t, "high-score", body.Filter)
	assert.Len(t, body.Submissions, 1)
}

func TestProgressHandlerDefaultsToAll(t *testing.T) {
	svc := &stubProgressService{summary: &models.ProgressSummary{}}
	router := newProgressRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterAll, svc.lastFilter)

	// An empty history serializes as [], not null.
	assert.Contains(t, rec.Body.String(), `"submissions":[]`)
}

func TestProgressHandlerInvalidFilter(t *testing.T) {
	router := newProgressRouter(&stubProgressService{summary: &models.ProgressSummary{}})

	req := httptest.NewRequest(http.MethodGet, "/api/progress?filter=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FILTER")
}
