package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
	"github.com/akinyeleolat/stackoverlite/internal/model"
)

// MockAnswerRepository is a mock implementation of AnswerRepository.
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, answer *model.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) Update(ctx context.Context, answer *model.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) FindByTextAndAuthor(ctx context.Context, text string, userID uint) (*model.Answer, error) {
	args := m.Called(ctx, text, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

// MockAnswerRatingRepository is a mock implementation of AnswerRatingRepository.
type MockAnswerRatingRepository struct {
	mock.Mock
}

func (m *MockAnswerRatingRepository) Upsert(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error) {
	args := m.Called(ctx, answerID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnswerRating), args.Error(1)
}

func (m *MockAnswerRatingRepository) FindByAnswerID(ctx context.Context, answerID uint) (*model.AnswerRating, error) {
	args := m.Called(ctx, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnswerRating), args.Error(1)
}

func newAnswerServiceWithMocks(answers *MockAnswerRepository, questions *MockQuestionRepository, ratings *MockAnswerRatingRepository) AnswerService {
	return NewAnswerService(answers, questions, ratings, nil)
}

func TestAnswerService_CreateAnswer(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		authorID      uint
		questionID    uint
		setupMocks    func(*MockAnswerRepository, *MockQuestionRepository)
		expectedError error
	}{
		{
			name:       "successful creation defaults to pending",
			text:       "Use channels.",
			authorID:   2,
			questionID: 1,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("FindByTextAndAuthor", mock.Anything, "Use channels.", uint(2)).Return(nil, gorm.ErrRecordNotFound)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Answer")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "missing question",
			text:       "Anything.",
			authorID:   2,
			questionID: 44,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				q.On("FindByID", mock.Anything, uint(44)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domainerrors.ErrQuestionNotFound,
		},
		{
			name:       "duplicate submission rejected",
			text:       "Same text.",
			authorID:   2,
			questionID: 1,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("FindByTextAndAuthor", mock.Anything, "Same text.", uint(2)).Return(&model.Answer{ID: 10, Answer: "Same text.", UserID: 2}, nil)
			},
			expectedError: domainerrors.ErrDuplicateAnswer,
		},
		{
			name:       "racing duplicate caught by unique index",
			text:       "Race text.",
			authorID:   2,
			questionID: 1,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("FindByTextAndAuthor", mock.Anything, "Race text.", uint(2)).Return(nil, gorm.ErrRecordNotFound)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Answer")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: domainerrors.ErrDuplicateAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAnswers := new(MockAnswerRepository)
			mockQuestions := new(MockQuestionRepository)
			tt.setupMocks(mockAnswers, mockQuestions)

			svc := newAnswerServiceWithMocks(mockAnswers, mockQuestions, new(MockAnswerRatingRepository))
			answer, err := svc.CreateAnswer(context.Background(), tt.text, tt.authorID, tt.questionID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, answer)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, answer)
				assert.Equal(t, model.AnswerStatusPending, answer.Status)
				assert.Equal(t, tt.authorID, answer.UserID)
				assert.Equal(t, tt.questionID, answer.QuestionID)
			}

			mockAnswers.AssertExpectations(t)
			mockQuestions.AssertExpectations(t)
		})
	}
}

func TestAnswerService_UpdateAnswer(t *testing.T) {
	const (
		authorID    = uint(2)
		otherUserID = uint(3)
	)

	existingAnswer := func() *model.Answer {
		return &model.Answer{
			ID:         10,
			Answer:     "original text",
			Status:     model.AnswerStatusPending,
			UserID:     authorID,
			QuestionID: 1,
		}
	}

	tests := []struct {
		name          string
		requesterID   uint
		text          string
		status        model.AnswerStatus
		setupMocks    func(*MockAnswerRepository, *MockQuestionRepository)
		expectedError error
		check         func(*testing.T, *model.Answer)
	}{
		{
			name:        "author edits text, status untouched",
			requesterID: authorID,
			text:        "revised text",
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("Update", mock.Anything, mock.AnythingOfType("*model.Answer")).Return(nil)
			},
			check: func(t *testing.T, answer *model.Answer) {
				assert.Equal(t, "revised text", answer.Answer)
				assert.Equal(t, model.AnswerStatusPending, answer.Status)
			},
		},
		{
			name:        "author cannot self-accept",
			requesterID: authorID,
			text:        "revised again",
			status:      model.AnswerStatusAccepted,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("Update", mock.Anything, mock.AnythingOfType("*model.Answer")).Return(nil)
			},
			check: func(t *testing.T, answer *model.Answer) {
				assert.Equal(t, "revised again", answer.Answer)
				assert.Equal(t, model.AnswerStatusPending, answer.Status, "status supplied by the author is ignored")
			},
		},
		{
			name:        "non-author accepts, text untouched",
			requesterID: otherUserID,
			text:        "should be ignored",
			status:      model.AnswerStatusAccepted,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
				a.On("Update", mock.Anything, mock.AnythingOfType("*model.Answer")).Return(nil)
			},
			check: func(t *testing.T, answer *model.Answer) {
				assert.Equal(t, "original text", answer.Answer)
				assert.Equal(t, model.AnswerStatusAccepted, answer.Status)
			},
		},
		{
			name:        "non-author without status",
			requesterID: otherUserID,
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
			},
			expectedError: domainerrors.ErrStatusRequired,
		},
		{
			name:        "non-author with unrecognized status",
			requesterID: otherUserID,
			status:      model.AnswerStatus("archived"),
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
			},
			expectedError: domainerrors.ErrInvalidStatus,
		},
		{
			name:        "missing answer",
			requesterID: authorID,
			text:        "whatever",
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domainerrors.ErrAnswerNotFound,
		},
		{
			name:        "missing parent question",
			requesterID: authorID,
			text:        "whatever",
			setupMocks: func(a *MockAnswerRepository, q *MockQuestionRepository) {
				a.On("FindByID", mock.Anything, uint(10)).Return(existingAnswer(), nil)
				q.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domainerrors.ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAnswers := new(MockAnswerRepository)
			mockQuestions := new(MockQuestionRepository)
			tt.setupMocks(mockAnswers, mockQuestions)

			svc := newAnswerServiceWithMocks(mockAnswers, mockQuestions, new(MockAnswerRatingRepository))
			answer, err := svc.UpdateAnswer(context.Background(), 10, tt.requesterID, tt.text, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, answer)
			} else {
				assert.NoError(t, err)
				tt.check(t, answer)
			}

			mockAnswers.AssertExpectations(t)
			mockQuestions.AssertExpectations(t)
		})
	}
}

func TestAnswerService_RateAnswer(t *testing.T) {
	t.Run("missing answer", func(t *testing.T) {
		mockAnswers := new(MockAnswerRepository)
		mockAnswers.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

		svc := newAnswerServiceWithMocks(mockAnswers, new(MockQuestionRepository), new(MockAnswerRatingRepository))
		_, err := svc.RateAnswer(context.Background(), 77, 3)

		assert.ErrorIs(t, err, domainerrors.ErrAnswerNotFound)
	})

	t.Run("second rating converges onto the same row", func(t *testing.T) {
		mockAnswers := new(MockAnswerRepository)
		mockAnswers.On("FindByID", mock.Anything, uint(10)).Return(&model.Answer{ID: 10, QuestionID: 1}, nil)

		mockRatings := new(MockAnswerRatingRepository)
		mockRatings.On("Upsert", mock.Anything, uint(10), 2).Return(&model.AnswerRating{ID: 4, AnswerID: 10, Rating: 2}, nil).Once()
		mockRatings.On("Upsert", mock.Anything, uint(10), 5).Return(&model.AnswerRating{ID: 4, AnswerID: 10, Rating: 5}, nil).Once()

		svc := newAnswerServiceWithMocks(mockAnswers, new(MockQuestionRepository), mockRatings)

		first, err := svc.RateAnswer(context.Background(), 10, 2)
		assert.NoError(t, err)
		second, err := svc.RateAnswer(context.Background(), 10, 5)
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "one rating row per answer")
		assert.Equal(t, 5, second.Rating)
		mockRatings.AssertExpectations(t)
	})
}
