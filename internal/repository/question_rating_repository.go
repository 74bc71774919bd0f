package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akinyeleolat/stackoverlite/internal/model"
)

// QuestionRatingRepository defines rating persistence for questions.
type QuestionRatingRepository interface {
	Upsert(ctx context.Context, questionID uint, rating int) (*model.QuestionRating, error)
	FindByQuestionID(ctx context.Context, questionID uint) (*model.QuestionRating, error)
}

type questionRatingRepository struct {
	db *gorm.DB
}

// NewQuestionRatingRepository builds a GORM-backed question rating repository.
func NewQuestionRatingRepository(db *gorm.DB) QuestionRatingRepository {
	return &questionRatingRepository{db: db}
}

// Upsert inserts the rating row for a question or updates the existing one
// in place. The ON CONFLICT clause rides on the unique question_id index,
// so two concurrent calls for the same question cannot produce two rows.
func (r *questionRatingRepository) Upsert(ctx context.Context, questionID uint, rating int) (*model.QuestionRating, error) {
	row := &model.QuestionRating{QuestionID: questionID, Rating: rating}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating,
			"updated_at": time.Now(),
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller gets the surviving row's id on the update path.
	return r.FindByQuestionID(ctx, questionID)
}

func (r *questionRatingRepository) FindByQuestionID(ctx context.Context, questionID uint) (*model.QuestionRating, error) {
	var row model.QuestionRating
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
