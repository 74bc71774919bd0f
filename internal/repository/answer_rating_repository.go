package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akinyeleolat/stackoverlite/internal/model"
)

// AnswerRatingRepository defines rating persistence for answers.
type AnswerRatingRepository interface {
	Upsert(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error)
	FindByAnswerID(ctx context.Context, answerID uint) (*model.AnswerRating, error)
}

type answerRatingRepository struct {
	db *gorm.DB
}

// NewAnswerRatingRepository builds a GORM-backed answer rating repository.
func NewAnswerRatingRepository(db *gorm.DB) AnswerRatingRepository {
	return &answerRatingRepository{db: db}
}

// Upsert inserts or updates the single rating row for an answer, keyed on
// the unique answer_id index. Same contract as the question variant.
func (r *answerRatingRepository) Upsert(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error) {
	row := &model.AnswerRating{AnswerID: answerID, Rating: rating}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "answer_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating,
			"updated_at": time.Now(),
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return r.FindByAnswerID(ctx, answerID)
}

func (r *answerRatingRepository) FindByAnswerID(ctx context.Context, answerID uint) (*model.AnswerRating, error) {
	var row model.AnswerRating
	if err := r.db.WithContext(ctx).Where("answer_id = ?", answerID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
