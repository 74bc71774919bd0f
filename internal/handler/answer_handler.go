package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// AnswerHandler bundles answer HTTP handlers.
type AnswerHandler struct {
	svc service.AnswerService
}

// NewAnswerHandler creates an answer handler.
func NewAnswerHandler(svc service.AnswerService) *AnswerHandler {
	return &AnswerHandler{svc: svc}
}

// CreateAnswerRequest represents an answer creation request.
type CreateAnswerRequest struct {
	Answer     string `json:"answer" validate:"required"`
	QuestionID uint   `json:"question_id" validate:"required"`
}

// UpdateAnswerRequest represents an answer update. Which field takes
// effect depends on whether the requester authored the answer.
type UpdateAnswerRequest struct {
	Answer string             `json:"answer"`
	Status model.AnswerStatus `json:"status"`
}

// CreateAnswer godoc
// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Param request body CreateAnswerRequest true "Answer payload"
// @Success 201 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /answers [post]
func (h *AnswerHandler) CreateAnswer(c echo.Context) error {
	var req CreateAnswerRequest
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

	answer, err := h.svc.CreateAnswer(c.Request().Context(), req.Answer, authorID, req.QuestionID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, answer)
}

// UpdateAnswer godoc
// @Summary Edit own answer or grade someone else's
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Answer ID"
// @Param request body UpdateAnswerRequest true "Text (author) or status (non-author)"
// @Success 200 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /answers/{id} [put]
func (h *AnswerHandler) UpdateAnswer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	requester, err := requesterID(c)
	if err != nil {
		return err
	}

	answer, err := h.svc.UpdateAnswer(c.Request().Context(), uint(id), requester, req.Answer, req.Status)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, answer)
}

// RateAnswer godoc
// @Summary Rate an answer
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Answer ID"
// @Param request body RateRequest true "Rating value"
// @Success 200 {object} model.AnswerRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /answers/{id}/rate [post]
func (h *AnswerHandler) RateAnswer(c echo.Context) error {
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

	rating, err := h.svc.RateAnswer(c.Request().Context(), uint(id), req.Rating)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, rating)
}
