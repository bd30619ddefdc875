package people

import (
	"regexp"
	"strings"
	"time"

	"github.com/peoplemanager/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Gender represents a person's declared gender
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// Password cost for bcrypt
const bcryptCost = 12

// ParseGender parses a gender value from external input
func ParseGender(value string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case GenderFemale:
		return GenderFemale, nil
	case GenderMale:
		return GenderMale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", shared.NewDomainError("INVALID_GENDER", "Gender must be one of: female, male, other")
	}
}

// Person represents a managed person record
// It is the aggregate root for people operations and doubles as the
// authenticatable principal (CPF + password)
type Person struct {
	ID           int64
	Name         string
	Gender       *Gender
	Email        *string
	PasswordHash string
	BirthDate    time.Time
	Naturality   *string
	Nationality  *string
	Address      *string
	CPF          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewPerson creates a new person with required fields validated.
// The CPF is stored in canonical form (digits only) and the password
// is stored only as a bcrypt hash. The ID is assigned by storage.
func NewPerson(name, cpf, password string, birthDate time.Time) (*Person, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := ValidateBirthDate(birthDate); err != nil {
		return nil, err
	}
	if err := ValidateCPF(cpf); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now().UTC()
	return &Person{
		Name:         strings.TrimSpace(name),
		CPF:          NormalizeCPF(cpf),
		PasswordHash: passwordHash,
		BirthDate:    birthDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetName sets the person's name
func (p *Person) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.touch()

	return nil
}

// SetGender sets the person's gender
func (p *Person) SetGender(gender Gender) {
	p.Gender = &gender
	p.touch()
}

// SetEmail sets the person's email. Uniqueness among live records is
// enforced by the application layer before persisting.
func (p *Person) SetEmail(email string) error {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return err
	}

	p.Email = &email
	p.touch()

	return nil
}

// SetBirthDate sets the person's birth date
func (p *Person) SetBirthDate(birthDate time.Time) error {
	if err := ValidateBirthDate(birthDate); err != nil {
		return err
	}

	p.BirthDate = birthDate
	p.touch()

	return nil
}

// SetCPF replaces the person's CPF, storing the canonical form
func (p *Person) SetCPF(cpf string) error {
	if err := ValidateCPF(cpf); err != nil {
		return err
	}

	p.CPF = NormalizeCPF(cpf)
	p.touch()

	return nil
}

// SetNaturality sets the person's city of birth
func (p *Person) SetNaturality(naturality string) {
	naturality = strings.TrimSpace(naturality)
	p.Naturality = &naturality
	p.touch()
}

// SetNationality sets the person's nationality
func (p *Person) SetNationality(nationality string) {
	nationality = strings.TrimSpace(nationality)
	p.Nationality = &nationality
	p.touch()
}

// SetAddress sets the person's address
func (p *Person) SetAddress(address string) {
	address = strings.TrimSpace(address)
	p.Address = &address
	p.touch()
}

// SetPassword sets a new password
func (p *Person) SetPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	p.PasswordHash = passwordHash
	p.touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (p *Person) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
	return err == nil
}

// MarkDeleted soft-deletes the person. The row stays in storage but the
// record disappears from every lookup.
func (p *Person) MarkDeleted() error {
	if p.IsDeleted() {
		return shared.ErrNotFound
	}

	now := time.Now().UTC()
	p.DeletedAt = &now
	p.UpdatedAt = now

	return nil
}

// IsDeleted returns true if the person has been soft-deleted
func (p *Person) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Person) touch() {
	p.UpdatedAt = time.Now().UTC()
}

// Validation functions

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	return nil
}

// ValidateBirthDate rejects birth dates in the future
func ValidateBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return shared.NewDomainError("INVALID_BIRTH_DATE", "Birth date is required")
	}
	if birthDate.After(time.Now().UTC()) {
		return shared.NewDomainError("INVALID_BIRTH_DATE", "Birth date cannot be in the future")
	}

	return nil
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail returns the canonical form of an email address:
// trimmed and lowercased. All storage and uniqueness checks use it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the email format
func ValidateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

// ValidatePassword enforces the password policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	// bcrypt only hashes the first 72 bytes, so longer inputs are rejected
	// rather than silently truncated
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}

	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLower || !hasUpper || !hasDigit {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one lowercase letter, one uppercase letter, and one digit")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
