package handler

import (
	"time"

	"github.com/peoplemanager/backend/internal/application/people"
)

const birthDateLayout = "2006-01-02"

// CreatePersonRequest represents a person creation request
type CreatePersonRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	CPF         string `json:"cpf" binding:"required"`
	Password    string `json:"password" binding:"required"`
	BirthDate   string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"omitempty,max=10"`
	Email       string `json:"email" binding:"omitempty,max=200"`
	Naturality  string `json:"naturality" binding:"omitempty,max=100"`
	Nationality string `json:"nationality" binding:"omitempty,max=100"`
	Address     string `json:"address" binding:"omitempty,max=500"`
}

// UpdatePersonRequest represents a partial person update.
// Absent and blank fields keep their current value.
type UpdatePersonRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	CPF         *string `json:"cpf"`
	BirthDate   *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" binding:"omitempty,max=10"`
	Email       *string `json:"email" binding:"omitempty,max=200"`
	Naturality  *string `json:"naturality" binding:"omitempty,max=100"`
	Nationality *string `json:"nationality" binding:"omitempty,max=100"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
}

// PersonResponse represents a person in API responses
type PersonResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	BirthDate   string    `json:"birth_date"`
	Gender      *string   `json:"gender,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Naturality  *string   `json:"naturality,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	Address     *string   `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// toPersonResponse maps an application DTO to the API representation
func toPersonResponse(dto people.PersonDTO) PersonResponse {
	return PersonResponse{
		ID:          dto.ID,
		Name:        dto.Name,
		CPF:         dto.CPF,
		BirthDate:   dto.BirthDate.Format(birthDateLayout),
		Gender:      dto.Gender,
		Email:       dto.Email,
		Naturality:  dto.Naturality,
		Nationality: dto.Nationality,
		Address:     dto.Address,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// toPersonResponses maps a slice of application DTOs
func toPersonResponses(dtos []people.PersonDTO) []PersonResponse {
	responses := make([]PersonResponse, 0, len(dtos))
	for _, dto := range dtos {
		responses = append(responses, toPersonResponse(dto))
	}
	return responses
}

// optionalString treats blank strings as absent
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// patchString drops blank-string patch fields so they keep current values
func patchString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
