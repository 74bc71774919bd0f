package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/akinyeleolat/stackoverlite/internal/auth"
	"github.com/akinyeleolat/stackoverlite/internal/config"
	"github.com/akinyeleolat/stackoverlite/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
	seedHandler *handler.SeedHandler,
	tokenStore auth.TokenStoreInterface,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)

	api.GET("/questions", questionHandler.ListQuestions)
	api.GET("/questions/:id", questionHandler.GetQuestion)

	// Secured routes: writes require an authenticated requester, whose id
	// the handlers take from the token claims.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), auth.RequireActiveToken(tokenStore))

	secured.POST("/questions", questionHandler.CreateQuestion)
	secured.PUT("/questions/:id", questionHandler.UpdateQuestion)
	secured.POST("/questions/:id/rate", questionHandler.RateQuestion)

	secured.POST("/answers", answerHandler.CreateAnswer)
	secured.PUT("/answers/:id", answerHandler.UpdateAnswer)
	secured.POST("/answers/:id/rate", answerHandler.RateAnswer)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
