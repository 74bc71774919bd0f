package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrQuestionNotFound is returned when a referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound is returned when a referenced answer does not exist.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrTitleTaken is returned when a question with the same title already exists.
	ErrTitleTaken = errors.New("question already exists")
	// ErrDuplicateAnswer is returned when a user re-submits an answer they already posted.
	ErrDuplicateAnswer = errors.New("answer already exists")
	// ErrStatusRequired is returned when a non-author update carries no status.
	ErrStatusRequired = errors.New("answer status required")
	// ErrInvalidStatus is returned when a supplied status is not a recognized value.
	ErrInvalidStatus = errors.New("invalid answer status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// is an infrastructure failure and surfaces as an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrQuestionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUESTION_NOT_FOUND")
	case errors.Is(err, ErrAnswerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ANSWER_NOT_FOUND")
	case errors.Is(err, ErrTitleTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "QUESTION_ALREADY_EXISTS")
	case errors.Is(err, ErrDuplicateAnswer):
		return NewHTTPError(http.StatusConflict, err.Error(), "ANSWER_ALREADY_EXISTS")
	case errors.Is(err, ErrStatusRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ANSWER_STATUS_REQUIRED")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ANSWER_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
