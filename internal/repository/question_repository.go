package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/akinyeleolat/stackoverlite/internal/model"
)

// QuestionRepository defines question persistence operations, including
// the eager-joined read backing the question aggregate.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	Update(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByTitle(ctx context.Context, title string) (*model.Question, error)
	List(ctx context.Context) ([]model.QuestionSummary, error)
	FindWithRelations(ctx context.Context, id uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByTitle(ctx context.Context, title string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List returns the lightweight summary projection, no relations.
func (r *questionRepository) List(ctx context.Context) ([]model.QuestionSummary, error) {
	var questions []model.QuestionSummary
	if err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("id", "slug", "title", "text", "description").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindWithRelations loads a question together with its rating, author, and
// answers (each with rating and author) in a single aggregate read.
func (r *questionRepository) FindWithRelations(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).
		Preload("Rating").
		Preload("Author").
		Preload("Answers").
		Preload("Answers.Rating").
		Preload("Answers.Author").
		First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}
