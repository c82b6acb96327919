package repository

import (
	"context"

	"github.com/lshigami/birthday-wall/internal/model"
	"gorm.io/gorm"
)

type BirthdayPostRepository interface {
	Create(ctx context.Context, post *model.BirthdayPost) error
	FindAllNewestFirst(ctx context.Context) ([]model.BirthdayPost, error)
}

type birthdayPostRepository struct {
	db *gorm.DB
}

func NewBirthdayPostRepository(db *gorm.DB) BirthdayPostRepository {
	return &birthdayPostRepository{db: db}
}

func (r *birthdayPostRepository) Create(ctx context.Context, post *model.BirthdayPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *birthdayPostRepository) FindAllNewestFirst(ctx context.Context) ([]model.BirthdayPost, error) {
	var posts []model.BirthdayPost
	// id breaks ties between posts created in the same instant
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
