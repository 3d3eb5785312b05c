package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// RemoteScorer calls an external scoring model over HTTP. Any transport,
// status or decode failure is reported as a scoring failure so the caller
// can retry the whole submit.
type RemoteScorer struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewRemoteScorer(endpoint, apiKey string, timeout time.Duration) *RemoteScorer {
	return &RemoteScorer{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	AIInfluence  float64             `json:"ai_influence"`
	QualityScore float64             `json:"quality_score"`
	Readability  models.Readability  `json:"readability"`
	Suggestions  []models.Suggestion `json:"suggestions"`
	Strengths    []models.Strength   `json:"strengths"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *RemoteScorer) Score(ctx context.Context, text string) (*models.Analysis, error) {
	jsonBody, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: scorer returned status %d", models.ErrScoringFailed, resp.StatusCode)
	}

	var parsed scoreResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}

	if parsed.Error != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrScoringFailed, parsed.Error.Message)
	}

	return &models.Analysis{
		AIInfluence:  parsed.AIInfluence,
		QualityScore: parsed.QualityScore,
		Readability:  parsed.Readability,
		Suggestions:  parsed.Suggestions,
		Strengths:    parsed.Strengths,
	}, nil
}

func (s *RemoteScorer) GetName() string {
	return "Remote"
}
