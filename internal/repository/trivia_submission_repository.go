package repository

import (
	"context"

	"github.com/lshigami/birthday-wall/internal/model"
	"gorm.io/gorm"
)

type TriviaSubmissionRepository interface {
	Create(ctx context.Context, submission *model.TriviaSubmission) error
	FindAllRanked(ctx context.Context) ([]model.TriviaSubmission, error)
}

type triviaSubmissionRepository struct {
	db *gorm.DB
}

func NewTriviaSubmissionRepository(db *gorm.DB) TriviaSubmissionRepository {
	return &triviaSubmissionRepository{db: db}
}

// Create inserts the submission in one statement. The generated id is read back
// through RETURNING and set on submission before Create returns.
func (r *triviaSubmissionRepository) Create(ctx context.Context, submission *model.TriviaSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// FindAllRanked returns every submission in leaderboard order: highest score
// first, earlier submission first on equal score, then lower id.
func (r *triviaSubmissionRepository) FindAllRanked(ctx context.Context) ([]model.TriviaSubmission, error) {
	var submissions []model.TriviaSubmission
	err := r.db.WithContext(ctx).
		Order("score DESC").
		Order("submitted_at ASC").
		Order("id ASC").
		Find(&submissions).Error
	return submissions, err
}
