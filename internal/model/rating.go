package model

import "time"

// QuestionRating holds the single rating row for a question. The unique
// index on question_id is what lets the rate operation run as an atomic
// upsert instead of a racy read-then-write.
type QuestionRating struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Rating     int       `json:"rating" gorm:"not null"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AnswerRating holds the single rating row for an answer, under the same
// one-row-per-subject rule as QuestionRating.
type AnswerRating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"`
	AnswerID  uint      `json:"answer_id" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
