package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/akinyeleolat/stackoverlite/internal/cache"
	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/repository"
)

// AnswerService owns answer creation, the two mutually exclusive update
// paths, and answer rating.
type AnswerService interface {
	CreateAnswer(ctx context.Context, text string, authorID, questionID uint) (*model.Answer, error)
	UpdateAnswer(ctx context.Context, id, requesterID uint, text string, status model.AnswerStatus) (*model.Answer, error)
	RateAnswer(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error)
}

type answerService struct {
	repo         repository.AnswerRepository
	questionRepo repository.QuestionRepository
	ratingRepo   repository.AnswerRatingRepository
	cache        *cache.Client
}

// NewAnswerService builds an AnswerService.
func NewAnswerService(repo repository.AnswerRepository, questionRepo repository.QuestionRepository, ratingRepo repository.AnswerRatingRepository, cache *cache.Client) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo, ratingRepo: ratingRepo, cache: cache}
}

// CreateAnswer persists a new pending answer after verifying the target
// question exists and the author has not already posted the same text.
// The unique (answer, user_id) index catches the racing double-post the
// read check cannot.
func (s *answerService) CreateAnswer(ctx context.Context, text string, authorID, questionID uint) (*model.Answer, error) {
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	existing, err := s.repo.FindByTextAndAuthor(ctx, text, authorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate answer: %w", err)
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateAnswer
	}

	answer := &model.Answer{
		Answer:     text,
		Status:     model.AnswerStatusPending,
		UserID:     authorID,
		QuestionID: questionID,
	}
	if err := s.repo.Create(ctx, answer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrDuplicateAnswer
		}
		return nil, fmt.Errorf("create answer: %w", err)
	}

	_ = s.cache.Delete(ctx, questionAggregateKey(questionID))
	return answer, nil
}

// UpdateAnswer branches on authorship. The author may only change the
// body text; a supplied status is silently ignored on that path, so
// self-acceptance is impossible. Any other user is grading the answer:
// a recognized status is required and the text is left alone.
func (s *answerService) UpdateAnswer(ctx context.Context, id, requesterID uint, text string, status model.AnswerStatus) (*model.Answer, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}

	if _, err := s.questionRepo.FindByID(ctx, answer.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	if requesterID == answer.UserID {
		if text != "" {
			answer.Answer = text
		}
	} else {
		if status == "" {
			return nil, domainerrors.ErrStatusRequired
		}
		if !model.ValidAnswerStatus(status) {
			return nil, domainerrors.ErrInvalidStatus
		}
		answer.Status = status
	}

	if err := s.repo.Update(ctx, answer); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}

	_ = s.cache.Delete(ctx, questionAggregateKey(answer.QuestionID))
	return answer, nil
}

// RateAnswer upserts the single rating row for an answer.
func (s *answerService) RateAnswer(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error) {
	answer, err := s.repo.FindByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}

	row, err := s.ratingRepo.Upsert(ctx, answerID, rating)
	if err != nil {
		return nil, fmt.Errorf("rate answer: %w", err)
	}
	_ = s.cache.Delete(ctx, questionAggregateKey(answer.QuestionID))
	return row, nil
}
