package models

import (
	"time"

	"github.com/peoplemanager/backend/internal/domain/people"
)

// PersonModel is the persistence model for the Person domain entity.
// Soft deletion is explicit: deleted_at is set, the row stays.
type PersonModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Gender       *string    `gorm:"type:varchar(10)"`
	Email        *string    `gorm:"type:varchar(200);index"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	BirthDate    time.Time  `gorm:"not null"`
	Naturality   *string    `gorm:"type:varchar(100)"`
	Nationality  *string    `gorm:"type:varchar(100)"`
	Address      *string    `gorm:"type:varchar(500)"`
	CPF          string     `gorm:"type:varchar(11);not null;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "people"
}

// ToDomain converts the persistence model to a domain Person entity.
func (m *PersonModel) ToDomain() *people.Person {
	person := &people.Person{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		BirthDate:    m.BirthDate,
		Naturality:   m.Naturality,
		Nationality:  m.Nationality,
		Address:      m.Address,
		CPF:          m.CPF,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
	if m.Gender != nil {
		gender := people.Gender(*m.Gender)
		person.Gender = &gender
	}
	return person
}

// FromDomain populates the persistence model from a domain Person entity.
func (m *PersonModel) FromDomain(p *people.Person) {
	m.ID = p.ID
	m.Name = p.Name
	m.Email = p.Email
	m.PasswordHash = p.PasswordHash
	m.BirthDate = p.BirthDate
	m.Naturality = p.Naturality
	m.Nationality = p.Nationality
	m.Address = p.Address
	m.CPF = p.CPF
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.DeletedAt = p.DeletedAt
	if p.Gender != nil {
		gender := string(*p.Gender)
		m.Gender = &gender
	} else {
		m.Gender = nil
	}
}

// PersonModelFromDomain creates a new persistence model from a domain Person entity.
func PersonModelFromDomain(p *people.Person) *PersonModel {
	m := &PersonModel{}
	m.FromDomain(p)
	return m
}
