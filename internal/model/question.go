package model

import "time"

// Question represents a posted question. Slug and description are derived
// at creation time and are not regenerated on later edits.
type Question struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Title       string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Author  User            `json:"-" gorm:"foreignKey:UserID"`
	Rating  *QuestionRating `json:"-" gorm:"foreignKey:QuestionID"`
	Answers []Answer        `json:"-" gorm:"foreignKey:QuestionID"`
}

// QuestionSummary is the listing projection used by GET /questions.
type QuestionSummary struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Description string `json:"description"`
}

// QuestionAggregate is the full read model for a single question: the
// question itself, its rating if any, its author, and every answer
// annotated with that answer's rating and author. Author views never
// carry credentials.
type QuestionAggregate struct {
	ID          uint            `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Text        string          `json:"text"`
	Author      AuthorProfile   `json:"author"`
	Rating      *QuestionRating `json:"rating,omitempty"`
	Answers     []AnswerView    `json:"answers"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
