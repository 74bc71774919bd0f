package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// SeedHandler populates demo data for local development.
type SeedHandler struct {
	authService     service.AuthService
	userService     service.UserService
	questionService service.QuestionService
	answerService   service.AnswerService
}

// NewSeedHandler creates a seed handler.
func NewSeedHandler(authService service.AuthService, userService service.UserService, questionService service.QuestionService, answerService service.AnswerService) *SeedHandler {
	return &SeedHandler{
		authService:     authService,
		userService:     userService,
		questionService: questionService,
		answerService:   answerService,
	}
}

// SeedDemo godoc
// @Summary Seed demo users, questions, answers, and ratings
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()

	asker, err := h.ensureUser(ctx, service.RegisterParams{
		Email:     "ada@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		return seedError(err)
	}
	answerer, err := h.ensureUser(ctx, service.RegisterParams{
		Email:     "alan@example.com",
		Password:  "password123",
		FirstName: "Alan",
		LastName:  "Turing",
	})
	if err != nil {
		return seedError(err)
	}

	seeded := 0
	for i, title := range []string{
		"How do goroutines differ from threads?",
		"When should an interface be returned instead of a struct?",
	} {
		question, err := h.questionService.CreateQuestion(ctx, title,
			fmt.Sprintf("Long-form body for demo question %d, detailed enough to exercise the preview truncation once it grows past the derived description bound.", i+1),
			asker.ID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTitleTaken) {
				continue
			}
			return seedError(err)
		}
		seeded++

		answer, err := h.answerService.CreateAnswer(ctx,
			fmt.Sprintf("Demo answer to question %d.", i+1), answerer.ID, question.ID)
		if err != nil {
			return seedError(err)
		}
		if _, err := h.questionService.RateQuestion(ctx, question.ID, 4); err != nil {
			return seedError(err)
		}
		if _, err := h.answerService.RateAnswer(ctx, answer.ID, 5); err != nil {
			return seedError(err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "demo data seeded",
		"questions": seeded,
	})
}

// ensureUser registers a demo user, falling back to an email lookup when the
// account already exists so repeat seeding reuses the same rows.
func (h *SeedHandler) ensureUser(ctx context.Context, params service.RegisterParams) (*model.User, error) {
	user, err := h.authService.Register(ctx, params)
	if errors.Is(err, service.ErrUserAlreadyExists) {
		return h.userService.GetUserByEmail(ctx, params.Email)
	}
	return user, err
}

func seedError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, domainerrors.ErrorResponse{
		Error: err.Error(),
		Code:  "SEED_FAILED",
	})
}
