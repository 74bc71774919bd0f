package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/akinyeleolat/stackoverlite/internal/model"
)

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	Update(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	FindByTextAndAuthor(ctx context.Context, text string, userID uint) (*model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository builds a GORM-backed answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) Update(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// FindByTextAndAuthor looks up the (answer, user) pair used for
// duplicate-submission detection.
func (r *answerRepository) FindByTextAndAuthor(ctx context.Context, text string, userID uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).
		Where("answer = ? AND user_id = ?", text, userID).
		First(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}
