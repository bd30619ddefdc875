package people

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBirthDate() time.Time {
	return time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
}

func TestNewPerson(t *testing.T) {
	t.Run("creates person with valid fields", func(t *testing.T) {
		person, err := NewPerson("Maria Silva", "111.444.777-35", "Password123", validBirthDate())

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", person.Name)
		assert.Equal(t, "11144477735", person.CPF)
		assert.NotEmpty(t, person.PasswordHash)
		assert.NotEqual(t, "Password123", person.PasswordHash)
		assert.Equal(t, validBirthDate(), person.BirthDate)
		assert.Nil(t, person.DeletedAt)
		assert.Zero(t, person.ID)
		assert.False(t, person.CreatedAt.IsZero())
	})

	t.Run("trims name whitespace", func(t *testing.T) {
		person, err := NewPerson("  Maria Silva  ", "11144477735", "Password123", validBirthDate())

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", person.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewPerson("", "11144477735", "Password123", validBirthDate())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with future birth date", func(t *testing.T) {
		future := time.Now().UTC().Add(24 * time.Hour)
		_, err := NewPerson("Maria Silva", "11144477735", "Password123", future)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("fails with invalid CPF", func(t *testing.T) {
		_, err := NewPerson("Maria Silva", "11144477734", "Password123", validBirthDate())

		assert.Error(t, err)
	})

	t.Run("fails with weak password", func(t *testing.T) {
		_, err := NewPerson("Maria Silva", "11144477735", "password", validBirthDate())

		assert.Error(t, err)
	})
}

func TestParseGender(t *testing.T) {
	t.Run("accepts known values", func(t *testing.T) {
		for _, value := range []string{"female", "male", "other"} {
			gender, err := ParseGender(value)
			require.NoError(t, err)
			assert.Equal(t, Gender(value), gender)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		gender, err := ParseGender(" Female ")
		require.NoError(t, err)
		assert.Equal(t, GenderFemale, gender)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseGender("unknown")
		assert.Error(t, err)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Run("accepts policy-compliant password", func(t *testing.T) {
		assert.NoError(t, ValidatePassword("Password123"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		assert.Error(t, ValidatePassword("Pass1"))
	})

	t.Run("rejects password without uppercase", func(t *testing.T) {
		assert.Error(t, ValidatePassword("password123"))
	})

	t.Run("rejects password without lowercase", func(t *testing.T) {
		assert.Error(t, ValidatePassword("PASSWORD123"))
	})

	t.Run("rejects password without digit", func(t *testing.T) {
		assert.Error(t, ValidatePassword("PasswordOnly"))
	})

	t.Run("accepts password at the bcrypt limit", func(t *testing.T) {
		assert.NoError(t, ValidatePassword("Aa1"+strings.Repeat("x", 69)))
	})

	t.Run("rejects password beyond the bcrypt limit", func(t *testing.T) {
		// bcrypt ignores everything past 72 bytes, so longer inputs
		// are a validation error rather than a hashing failure
		assert.Error(t, ValidatePassword("Aa1"+strings.Repeat("x", 70)))
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("accepts plain address", func(t *testing.T) {
		assert.NoError(t, ValidateEmail("maria@example.com"))
	})

	t.Run("rejects address without domain dot", func(t *testing.T) {
		assert.Error(t, ValidateEmail("maria@example"))
	})

	t.Run("rejects address with spaces", func(t *testing.T) {
		assert.Error(t, ValidateEmail("maria silva@example.com"))
	})

	t.Run("rejects address without at sign", func(t *testing.T) {
		assert.Error(t, ValidateEmail("maria.example.com"))
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "maria@example.com", NormalizeEmail("  Maria@Example.COM  "))
	assert.Equal(t, "maria@example.com", NormalizeEmail("maria@example.com"))
}

func TestPersonSetters(t *testing.T) {
	newPerson := func(t *testing.T) *Person {
		person, err := NewPerson("Maria Silva", "11144477735", "Password123", validBirthDate())
		require.NoError(t, err)
		return person
	}

	t.Run("SetEmail lowercases and trims", func(t *testing.T) {
		person := newPerson(t)

		require.NoError(t, person.SetEmail(" Maria@Example.COM "))
		require.NotNil(t, person.Email)
		assert.Equal(t, "maria@example.com", *person.Email)
	})

	t.Run("SetEmail rejects invalid format", func(t *testing.T) {
		person := newPerson(t)

		assert.Error(t, person.SetEmail("not-an-email"))
		assert.Nil(t, person.Email)
	})

	t.Run("SetCPF stores canonical form", func(t *testing.T) {
		person := newPerson(t)

		require.NoError(t, person.SetCPF("529.982.247-25"))
		assert.Equal(t, "52998224725", person.CPF)
	})

	t.Run("SetCPF rejects invalid CPF", func(t *testing.T) {
		person := newPerson(t)

		assert.Error(t, person.SetCPF("52998224724"))
		assert.Equal(t, "11144477735", person.CPF)
	})

	t.Run("SetBirthDate rejects future date", func(t *testing.T) {
		person := newPerson(t)

		err := person.SetBirthDate(time.Now().UTC().Add(time.Hour))
		assert.Error(t, err)
		assert.Equal(t, validBirthDate(), person.BirthDate)
	})

	t.Run("SetPassword rehashes", func(t *testing.T) {
		person := newPerson(t)
		oldHash := person.PasswordHash

		require.NoError(t, person.SetPassword("NewPassword456"))
		assert.NotEqual(t, oldHash, person.PasswordHash)
		assert.True(t, person.VerifyPassword("NewPassword456"))
		assert.False(t, person.VerifyPassword("Password123"))
	})
}

func TestPersonMarkDeleted(t *testing.T) {
	person, err := NewPerson("Maria Silva", "11144477735", "Password123", validBirthDate())
	require.NoError(t, err)

	require.NoError(t, person.MarkDeleted())
	assert.True(t, person.IsDeleted())
	require.NotNil(t, person.DeletedAt)

	// Deleting twice behaves like the record is already gone
	assert.Error(t, person.MarkDeleted())
}

func TestVerifyPassword(t *testing.T) {
	person, err := NewPerson("Maria Silva", "11144477735", "Password123", validBirthDate())
	require.NoError(t, err)

	assert.True(t, person.VerifyPassword("Password123"))
	assert.False(t, person.VerifyPassword("WrongPassword1"))
	assert.False(t, person.VerifyPassword(""))
}
