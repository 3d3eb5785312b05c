package repositories

import (
	"context"
	"time"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

type SubmissionRepository interface {
	//create
	Create(ctx context.Context, sub *models.Submission) error

	//get
	GetByID(ctx context.Context, id string, ownerID int64) (*models.Submission, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Submission, error)
	CountByOwnerSince(ctx context.Context, ownerID int64, since time.Time) (int64, error)

	//revise (the only mutation; createdAt, ownerId and text never change)
	Revise(ctx context.Context, id string, ownerID int64, patch *models.AnalysisPatch) (*models.Submission, error)
}
