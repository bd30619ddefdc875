package people

import (
	"time"
)

// CreatePersonInput contains the input for creating a person
type CreatePersonInput struct {
	Name        string
	CPF         string // masked or bare digits
	Password    string
	BirthDate   time.Time
	Gender      *string
	Email       *string
	Naturality  *string
	Nationality *string
	Address     *string
}

// UpdatePersonInput contains the input for a partial update.
// Nil fields keep their current value.
type UpdatePersonInput struct {
	Name        *string
	CPF         *string
	BirthDate   *time.Time
	Gender      *string
	Email       *string
	Naturality  *string
	Nationality *string
	Address     *string
}

// PersonDTO is the person representation returned to callers.
// The password hash never leaves the application layer.
type PersonDTO struct {
	ID          int64
	Name        string
	CPF         string
	BirthDate   time.Time
	Gender      *string
	Email       *string
	Naturality  *string
	Nationality *string
	Address     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoginInput contains the input for authentication
type LoginInput struct {
	CPF      string
	Password string
}

// LoginResult contains the result of a successful authentication
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TokenType string
	Person    PersonDTO
}

// CurrentPersonInput identifies the authenticated principal
type CurrentPersonInput struct {
	PersonID int64
}

// LogoutInput contains the input for logout
type LogoutInput struct {
	TokenJTI  string
	ExpiresAt time.Time
}
