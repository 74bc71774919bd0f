package model

import "time"

// User represents a registered member of the platform.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"first_name" gorm:"size:255;not null"`
	MiddleName   string    `json:"middle_name,omitempty" gorm:"size:255"`
	LastName     string    `json:"last_name" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Questions []Question `json:"-" gorm:"foreignKey:UserID"`
	Answers   []Answer   `json:"-" gorm:"foreignKey:UserID"`
}

// UserSummary is the listing projection: identity fields, no credentials.
type UserSummary struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
}

// AuthorProfile is the minimal author view embedded in aggregate reads.
type AuthorProfile struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile returns the author view of a user.
func (u *User) Profile() AuthorProfile {
	return AuthorProfile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
