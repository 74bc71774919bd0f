package main

import (
	"log"
	"net/http"

	_ "github.com/akinyeleolat/stackoverlite/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/akinyeleolat/stackoverlite/internal/auth"
	"github.com/akinyeleolat/stackoverlite/internal/cache"
	"github.com/akinyeleolat/stackoverlite/internal/config"
	"github.com/akinyeleolat/stackoverlite/internal/db"
	"github.com/akinyeleolat/stackoverlite/internal/handler"
	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/repository"
	"github.com/akinyeleolat/stackoverlite/internal/router"
	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// @title Stackoverlite API
// @version 1.0
// @description Q&A platform API: questions, answers, ratings, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionRating{},
		&model.AnswerRating{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)
	questionRatingRepo := repository.NewQuestionRatingRepository(gormDB)
	answerRatingRepo := repository.NewAnswerRatingRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	questionService := service.NewQuestionService(questionRepo, questionRatingRepo, cacheClient)
	answerService := service.NewAnswerService(answerRepo, questionRepo, answerRatingRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)
	seedHandler := handler.NewSeedHandler(authService, userService, questionService, answerService)

	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		questionHandler,
		answerHandler,
		seedHandler,
		tokenStore,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
