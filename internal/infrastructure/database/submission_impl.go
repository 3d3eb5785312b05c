package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/repositories"
)

type submissionRepository struct {
	db *PostgresDB
}

func NewSubmissionRepository(db *PostgresDB) repositories.SubmissionRepository {
	return &submissionRepository{db: db}
}

const submissionColumns = `id, owner_id, title, text, ai_influence, quality_score,
	readability_score, readability_level, suggestions, strengths, created_at, updated_at`

func (r *submissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	suggestionsJSON, err := json.Marshal(sub.Analysis.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	strengthsJSON, err := json.Marshal(sub.Analysis.Strengths)
	if err != nil {
		return fmt.Errorf("failed to marshal strengths: %w", err)
	}

	query := `INSERT INTO submissions (
		id, owner_id, title, text, ai_influence, quality_score,
		readability_score, readability_level, suggestions, strengths
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.OwnerID,
		sub.Title,
		sub.Text,
		sub.Analysis.AIInfluence,
		sub.Analysis.QualityScore,
		sub.Analysis.Readability.Score,
		sub.Analysis.Readability.Level,
		suggestionsJSON,
		strengthsJSON,
	).Scan(&sub.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string, ownerID int64) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if sub.OwnerID != ownerID {
		return nil, models.ErrForbidden
	}
	return sub, nil
}

func (r *submissionRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Submission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM submissions
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *submissionRepository) CountByOwnerSince(ctx context.Context, ownerID int64, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM submissions WHERE owner_id = $1 AND created_at >= $2`

	if err := r.db.GetContext(ctx, &count, query, ownerID, since); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

func (r *submissionRepository) Revise(ctx context.Context, id string, ownerID int64, patch *models.AnalysisPatch) (*models.Submission, error) {
	sub, err := r.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.AIInfluence != nil {
		sub.Analysis.AIInfluence = *patch.AIInfluence
	}
	if patch.QualityScore != nil {
		sub.Analysis.QualityScore = *patch.QualityScore
	}
	if patch.Readability != nil {
		sub.Analysis.Readability = *patch.Readability
	}
	if patch.Suggestions != nil {
		sub.Analysis.Suggestions = patch.Suggestions
	}
	if patch.Strengths != nil {
		sub.Analysis.Strengths = patch.Strengths
	}

	suggestionsJSON, err := json.Marshal(sub.Analysis.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	strengthsJSON, err := json.Marshal(sub.Analysis.Strengths)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal strengths: %w", err)
	}

	// createdAt, owner_id and text are never touched by a revision.
	query := `UPDATE submissions
		SET ai_influence = $2, quality_score = $3, readability_score = $4,
		    readability_level = $5, suggestions = $6, strengths = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.Analysis.AIInfluence,
		sub.Analysis.QualityScore,
		sub.Analysis.Readability.Score,
		sub.Analysis.Readability.Level,
		suggestionsJSON,
		strengthsJSON,
	).Scan(&updatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to revise submission: %w", err)
	}

	sub.UpdatedAt = &updatedAt
	return sub, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	sub := &models.Submission{}
	var suggestionsJSON, strengthsJSON []byte

	err := row.Scan(
		&sub.ID,
		&sub.OwnerID,
		&sub.Title,
		&sub.Text,
		&sub.Analysis.AIInfluence,
		&sub.Analysis.QualityScore,
		&sub.Analysis.Readability.Score,
		&sub.Analysis.Readability.Level,
		&suggestionsJSON,
		&strengthsJSON,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Older records stored suggestions and strengths as plain string
	// arrays; the models decode both shapes.
	if err := json.Unmarshal(suggestionsJSON, &sub.Analysis.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if err := json.Unmarshal(strengthsJSON, &sub.Analysis.Strengths); err != nil {
		return nil, fmt.Errorf("failed to decode strengths: %w", err)
	}

	return sub, nil
}
