package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/akinyeleolat/stackoverlite/internal/auth"
	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
)

// requesterID extracts the authenticated user's id from the JWT the
// middleware put on the context. Handlers never trust ids from the body.
func requesterID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims.UserID, nil
}

// domainError translates a service error into the standardized HTTP shape.
func domainError(err error) *echo.HTTPError {
	he := domainerrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
