package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params service.RegisterParams) (*model.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*model.User), args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	args := m.Called(ctx, refreshToken, accessToken)
	return args.Error(0)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserSummary), args.Error(1)
}

// MockQuestionService is a mock implementation of service.QuestionService.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, title, text string, authorID uint) (*model.Question, error) {
	args := m.Called(ctx, title, text, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) UpdateQuestion(ctx context.Context, id uint, fields service.QuestionUpdate) (*model.Question, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) GetByTitle(ctx context.Context, title string) (*model.Question, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) GetByID(ctx context.Context, id uint) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) ListAll(ctx context.Context) ([]model.QuestionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestionSummary), args.Error(1)
}

func (m *MockQuestionService) GetAggregateByID(ctx context.Context, id uint) (*model.QuestionAggregate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestionAggregate), args.Error(1)
}

func (m *MockQuestionService) RateQuestion(ctx context.Context, questionID uint, rating int) (*model.QuestionRating, error) {
	args := m.Called(ctx, questionID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestionRating), args.Error(1)
}

// MockAnswerService is a mock implementation of service.AnswerService.
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) CreateAnswer(ctx context.Context, text string, authorID, questionID uint) (*model.Answer, error) {
	args := m.Called(ctx, text, authorID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerService) UpdateAnswer(ctx context.Context, id, requesterID uint, text string, status model.AnswerStatus) (*model.Answer, error) {
	args := m.Called(ctx, id, requesterID, text, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerService) RateAnswer(ctx context.Context, answerID uint, rating int) (*model.AnswerRating, error) {
	args := m.Called(ctx, answerID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnswerRating), args.Error(1)
}

// Seeding must still run when some demo users exist from an earlier run:
// existing accounts are resolved by email instead of aborting.
func TestSeedDemoReusesExistingUsers(t *testing.T) {
	authSvc := new(MockAuthService)
	userSvc := new(MockUserService)
	questionSvc := new(MockQuestionService)
	answerSvc := new(MockAnswerService)

	asker := &model.User{ID: 1, Email: "ada@example.com"}
	answerer := &model.User{ID: 2, Email: "alan@example.com"}

	// Ada is left over from a previous seed run; Alan is not.
	authSvc.On("Register", mock.Anything, mock.MatchedBy(func(p service.RegisterParams) bool {
		return p.Email == asker.Email
	})).Return(nil, service.ErrUserAlreadyExists)
	userSvc.On("GetUserByEmail", mock.Anything, asker.Email).Return(asker, nil)
	authSvc.On("Register", mock.Anything, mock.MatchedBy(func(p service.RegisterParams) bool {
		return p.Email == answerer.Email
	})).Return(answerer, nil)

	questionSvc.On("CreateQuestion", mock.Anything, mock.Anything, mock.Anything, asker.ID).
		Return(&model.Question{ID: 10, UserID: asker.ID}, nil).Once()
	questionSvc.On("CreateQuestion", mock.Anything, mock.Anything, mock.Anything, asker.ID).
		Return(&model.Question{ID: 11, UserID: asker.ID}, nil).Once()
	answerSvc.On("CreateAnswer", mock.Anything, mock.Anything, answerer.ID, mock.Anything).
		Return(&model.Answer{ID: 20, UserID: answerer.ID}, nil)
	questionSvc.On("RateQuestion", mock.Anything, mock.Anything, 4).Return(&model.QuestionRating{}, nil)
	answerSvc.On("RateAnswer", mock.Anything, mock.Anything, 5).Return(&model.AnswerRating{}, nil)

	h := NewSeedHandler(authSvc, userSvc, questionSvc, answerSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/seed/demo", nil)
	rec := httptest.NewRecorder()

	err := h.SeedDemo(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"questions":2`)
	authSvc.AssertExpectations(t)
	userSvc.AssertExpectations(t)
	questionSvc.AssertExpectations(t)
	answerSvc.AssertExpectations(t)
}
