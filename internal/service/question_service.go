package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/akinyeleolat/stackoverlite/internal/cache"
	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/repository"
)

const (
	// questionPreviewLength bounds the derived description.
	questionPreviewLength = 200
	questionCacheTTL      = 5 * time.Minute
)

// questionAggregateKey is shared with the answer service: any write under
// a question tree invalidates the same cache entry.
func questionAggregateKey(id uint) string {
	return fmt.Sprintf("question:aggregate:%d", id)
}

// QuestionUpdate carries the merge fields for UpdateQuestion. Nil fields
// are left untouched. Slug is deliberately absent: it is never re-derived,
// and a title change does not regenerate it.
type QuestionUpdate struct {
	Title       *string
	Text        *string
	Description *string
}

// QuestionService owns question creation, updates, lookups, the aggregate
// read, and question rating.
type QuestionService interface {
	CreateQuestion(ctx context.Context, title, text string, authorID uint) (*model.Question, error)
	UpdateQuestion(ctx context.Context, id uint, fields QuestionUpdate) (*model.Question, error)
	GetByTitle(ctx context.Context, title string) (*model.Question, error)
	GetByID(ctx context.Context, id uint) (*model.Question, error)
	ListAll(ctx context.Context) ([]model.QuestionSummary, error)
	GetAggregateByID(ctx context.Context, id uint) (*model.QuestionAggregate, error)
	RateQuestion(ctx context.Context, questionID uint, rating int) (*model.QuestionRating, error)
}

type questionService struct {
	repo       repository.QuestionRepository
	ratingRepo repository.QuestionRatingRepository
	cache      *cache.Client
}

// NewQuestionService builds a QuestionService.
func NewQuestionService(repo repository.QuestionRepository, ratingRepo repository.QuestionRatingRepository, cache *cache.Client) QuestionService {
	return &questionService{repo: repo, ratingRepo: ratingRepo, cache: cache}
}

// CreateQuestion rejects duplicate titles, derives the slug and the
// description preview, and persists the new question.
func (s *questionService) CreateQuestion(ctx context.Context, title, text string, authorID uint) (*model.Question, error) {
	existing, err := s.GetByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("check question title: %w", err)
	}
	if existing != nil {
		return nil, domainerrors.ErrTitleTaken
	}

	question := &model.Question{
		Title:       title,
		Text:        text,
		Slug:        UniqueSlug(title),
		Description: Ellipsis(text, questionPreviewLength),
		UserID:      authorID,
	}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// UpdateQuestion merges the supplied fields into an existing question and
// returns the refreshed entity. Slug and description are not re-derived.
func (s *questionService) UpdateQuestion(ctx context.Context, id uint, fields QuestionUpdate) (*model.Question, error) {
	question, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find question: %w", err)
	}
	if question == nil {
		return nil, domainerrors.ErrQuestionNotFound
	}

	if fields.Title != nil {
		question.Title = *fields.Title
	}
	if fields.Text != nil {
		question.Text = *fields.Text
	}
	if fields.Description != nil {
		question.Description = *fields.Description
	}

	if err := s.repo.Update(ctx, question); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	_ = s.cache.Delete(ctx, questionAggregateKey(id))

	return s.repo.FindByID(ctx, id)
}

// GetByTitle returns the question with the given title, or nil when no
// such question exists. Callers use the nil result as an existence check.
func (s *questionService) GetByTitle(ctx context.Context, title string) (*model.Question, error) {
	question, err := s.repo.FindByTitle(ctx, title)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}

// GetByID returns the question with the given id, or nil when absent.
func (s *questionService) GetByID(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}

// ListAll returns the lightweight summary projection of every question.
func (s *questionService) ListAll(ctx context.Context) ([]model.QuestionSummary, error) {
	return s.repo.List(ctx)
}

// GetAggregateByID serves the full question read model through the cache.
func (s *questionService) GetAggregateByID(ctx context.Context, id uint) (*model.QuestionAggregate, error) {
	key := questionAggregateKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.QuestionAggregate
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.repo.FindWithRelations(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load question aggregate: %w", err)
	}

	aggregate := buildAggregate(question)
	if payload, err := json.Marshal(aggregate); err == nil {
		_ = s.cache.Set(ctx, key, payload, questionCacheTTL)
	}
	return aggregate, nil
}

// RateQuestion upserts the single rating row for a question.
func (s *questionService) RateQuestion(ctx context.Context, questionID uint, rating int) (*model.QuestionRating, error) {
	question, err := s.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("find question: %w", err)
	}
	if question == nil {
		return nil, domainerrors.ErrQuestionNotFound
	}

	row, err := s.ratingRepo.Upsert(ctx, questionID, rating)
	if err != nil {
		return nil, fmt.Errorf("rate question: %w", err)
	}
	_ = s.cache.Delete(ctx, questionAggregateKey(questionID))
	return row, nil
}

// buildAggregate maps a preloaded question row onto the read model,
// stripping authors down to their public profile.
func buildAggregate(question *model.Question) *model.QuestionAggregate {
	answers := make([]model.AnswerView, 0, len(question.Answers))
	for i := range question.Answers {
		a := &question.Answers[i]
		answers = append(answers, model.AnswerView{
			ID:        a.ID,
			Answer:    a.Answer,
			Status:    a.Status,
			Author:    a.Author.Profile(),
			Rating:    a.Rating,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}

	return &model.QuestionAggregate{
		ID:          question.ID,
		Slug:        question.Slug,
		Title:       question.Title,
		Description: question.Description,
		Text:        question.Text,
		Author:      question.Author.Profile(),
		Rating:      question.Rating,
		Answers:     answers,
		CreatedAt:   question.CreatedAt,
		UpdatedAt:   question.UpdatedAt,
	}
}
