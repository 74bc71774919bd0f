package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// QuestionHandler bundles question HTTP handlers.
type QuestionHandler struct {
	svc service.QuestionService
}

// NewQuestionHandler creates a question handler.
func NewQuestionHandler(svc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// CreateQuestionRequest represents a question creation request.
type CreateQuestionRequest struct {
	Title string `json:"title" validate:"required"`
	Text  string `json:"text" validate:"required"`
}

// UpdateQuestionRequest represents a question update request. Absent
// fields are left untouched; slug is never updatable.
type UpdateQuestionRequest struct {
	Title       *string `json:"title"`
	Text        *string `json:"text"`
	Description *string `json:"description"`
}

// RateRequest represents a rating submission for either subject kind.
type RateRequest struct {
	Rating int `json:"rating" validate:"required"`
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "Question payload"
// @Success 201 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID, err := requesterID(c)
	if err != nil {
		return err
	}

	question, err := h.svc.CreateQuestion(c.Request().Context(), req.Title, req.Text, authorID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body UpdateQuestionRequest true "Fields to merge"
// @Success 200 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	question, err := h.svc.UpdateQuestion(c.Request().Context(), uint(id), service.QuestionUpdate{
		Title:       req.Title,
		Text:        req.Text,
		Description: req.Description,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, question)
}

// ListQuestions godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {array} model.QuestionSummary
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	questions, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a question with answers, ratings, and authors
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} model.QuestionAggregate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	aggregate, err := h.svc.GetAggregateByID(c.Request().Context(), uint(id))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, aggregate)
}

// RateQuestion godoc
// @Summary Rate a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body RateRequest true "Rating value"
// @Success 200 {object} model.QuestionRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /questions/{id}/rate [post]
func (h *QuestionHandler) RateQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.svc.RateQuestion(c.Request().Context(), uint(id), req.Rating)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, rating)
}
