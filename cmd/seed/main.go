package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/akinyeleolat/stackoverlite/internal/auth"
	"github.com/akinyeleolat/stackoverlite/internal/cache"
	"github.com/akinyeleolat/stackoverlite/internal/config"
	"github.com/akinyeleolat/stackoverlite/internal/db"
	domainerrors "github.com/akinyeleolat/stackoverlite/internal/errors"
	"github.com/akinyeleolat/stackoverlite/internal/model"
	"github.com/akinyeleolat/stackoverlite/internal/repository"
	"github.com/akinyeleolat/stackoverlite/internal/service"
)

// Seeds a handful of users, questions, answers, and ratings so the API has
// data to serve out of the box. Safe to re-run: existing rows are kept.
func main() {
	cfg := config.Load()
	ctx := context.Background()

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

	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)
	questionRatingRepo := repository.NewQuestionRatingRepository(gormDB)
	answerRatingRepo := repository.NewAnswerRatingRepository(gormDB)

	// No redis needed for a one-shot seed; the cache client is nil-safe.
	var cacheClient *cache.Client

	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(cacheClient))
	questionService := service.NewQuestionService(questionRepo, questionRatingRepo, cacheClient)
	answerService := service.NewAnswerService(answerRepo, questionRepo, answerRatingRepo, cacheClient)

	users := make([]*model.User, 0, 3)
	for _, params := range []service.RegisterParams{
		{Email: "ada@example.com", Password: "password123", FirstName: "Ada", LastName: "Lovelace"},
		{Email: "alan@example.com", Password: "password123", FirstName: "Alan", LastName: "Turing"},
		{Email: "grace@example.com", Password: "password123", FirstName: "Grace", MiddleName: "Brewster", LastName: "Hopper"},
	} {
		user, err := authService.Register(ctx, params)
		if errors.Is(err, service.ErrUserAlreadyExists) {
			user, err = userRepo.FindByEmail(ctx, params.Email)
		}
		if err != nil {
			log.Fatalf("seed user %s: %v", params.Email, err)
		}
		users = append(users, user)
	}

	titles := []string{
		"How do goroutines differ from threads?",
		"When should an interface be returned instead of a struct?",
		"What is the idiomatic way to wrap errors?",
	}
	for i, title := range titles {
		question, err := questionService.CreateQuestion(ctx, title,
			fmt.Sprintf("Seeded body for %q. The text runs long on purpose so the derived description gets a chance to truncate once it exceeds the preview bound used at creation time.", title),
			users[0].ID)
		if errors.Is(err, domainerrors.ErrTitleTaken) {
			// A previous run already seeded this question.
			continue
		}
		if err != nil {
			log.Fatalf("seed question %q: %v", title, err)
		}

		answer, err := answerService.CreateAnswer(ctx,
			fmt.Sprintf("Seeded answer number %d.", i+1), users[1].ID, question.ID)
		if err != nil {
			log.Fatalf("seed answer: %v", err)
		}
		if _, err := questionService.RateQuestion(ctx, question.ID, 4); err != nil {
			log.Fatalf("seed question rating: %v", err)
		}
		if _, err := answerService.RateAnswer(ctx, answer.ID, 5); err != nil {
			log.Fatalf("seed answer rating: %v", err)
		}
	}

	log.Println("seed complete")
}
