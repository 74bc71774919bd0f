package model

import "time"

// AnswerStatus is the review state of an answer.
type AnswerStatus string

const (
	AnswerStatusPending  AnswerStatus = "pending"
	AnswerStatusAccepted AnswerStatus = "accepted"
)

// ValidAnswerStatus reports whether s is a recognized status value.
func ValidAnswerStatus(s AnswerStatus) bool {
	return s == AnswerStatusPending || s == AnswerStatusAccepted
}

// Answer represents a user's answer to a question. The composite unique
// index on (answer, user_id) backs duplicate-submission rejection at the
// store level, so a racing double-post cannot slip past the service check.
type Answer struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	Answer     string       `json:"answer" gorm:"size:255;not null;uniqueIndex:ux_answers_answer_author"`
	Status     AnswerStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	UserID     uint         `json:"user_id" gorm:"not null;uniqueIndex:ux_answers_answer_author"`
	QuestionID uint         `json:"question_id" gorm:"not null;index"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	// Relations
	Author User          `json:"-" gorm:"foreignKey:UserID"`
	Rating *AnswerRating `json:"-" gorm:"foreignKey:AnswerID"`
}

// AnswerView is the answer element of a question aggregate.
type AnswerView struct {
	ID        uint          `json:"id"`
	Answer    string        `json:"answer"`
	Status    AnswerStatus  `json:"status"`
	Author    AuthorProfile `json:"author"`
	Rating    *AnswerRating `json:"rating,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
