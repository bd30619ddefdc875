package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/peoplemanager/backend/internal/domain/people"
	"github.com/peoplemanager/backend/internal/domain/shared"
	"github.com/peoplemanager/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPersonTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PersonModel{})
	require.NoError(t, err)

	return db
}

func newStoredPerson(t *testing.T, cpf, email string) *people.Person {
	t.Helper()
	birthDate := time.Date(1985, time.March, 12, 0, 0, 0, 0, time.UTC)
	person, err := people.NewPerson("Maria Silva", cpf, "Password123", birthDate)
	require.NoError(t, err)
	if email != "" {
		require.NoError(t, person.SetEmail(email))
	}
	return person
}

func TestGormPersonRepository_Create(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "111.444.777-35", "maria@example.com")
	err := repo.Create(ctx, person)

	require.NoError(t, err)
	assert.NotZero(t, person.ID)

	found, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.Name)
	assert.Equal(t, "11144477735", found.CPF)
	require.NotNil(t, found.Email)
	assert.Equal(t, "maria@example.com", *found.Email)
	assert.Nil(t, found.DeletedAt)
}

func TestGormPersonRepository_FindByID_NotFound(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPersonRepository_FindByCPF(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "11144477735", "")
	require.NoError(t, repo.Create(ctx, person))

	t.Run("finds existing person", func(t *testing.T) {
		found, err := repo.FindByCPF(ctx, "11144477735")
		require.NoError(t, err)
		assert.Equal(t, person.ID, found.ID)
	})

	t.Run("returns not found for unknown CPF", func(t *testing.T) {
		_, err := repo.FindByCPF(ctx, "52998224725")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPersonRepository_Update(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "11144477735", "")
	require.NoError(t, repo.Create(ctx, person))

	require.NoError(t, person.SetName("Maria Souza"))
	err := repo.Update(ctx, person)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", found.Name)
}

func TestGormPersonRepository_SoftDeleteExcludedFromQueries(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "11144477735", "maria@example.com")
	require.NoError(t, repo.Create(ctx, person))

	require.NoError(t, person.MarkDeleted())
	require.NoError(t, repo.Update(ctx, person))

	t.Run("FindByID skips deleted", func(t *testing.T) {
		_, err := repo.FindByID(ctx, person.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindByCPF skips deleted", func(t *testing.T) {
		_, err := repo.FindByCPF(ctx, "11144477735")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindAll skips deleted", func(t *testing.T) {
		persons, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, persons)
	})

	t.Run("ExistsByCPF skips deleted", func(t *testing.T) {
		exists, err := repo.ExistsByCPF(ctx, "11144477735", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("row is preserved in the table", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.PersonModel{}).Where("id = ?", person.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormPersonRepository_FindAll(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	first := newStoredPerson(t, "11144477735", "")
	require.NoError(t, repo.Create(ctx, first))

	second := newStoredPerson(t, "52998224725", "")
	require.NoError(t, repo.Create(ctx, second))

	persons, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, first.ID, persons[0].ID)
	assert.Equal(t, second.ID, persons[1].ID)
}

func TestGormPersonRepository_ExistsByCPF(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "11144477735", "")
	require.NoError(t, repo.Create(ctx, person))

	t.Run("exists for stored CPF", func(t *testing.T) {
		exists, err := repo.ExistsByCPF(ctx, "11144477735", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("does not exist for unknown CPF", func(t *testing.T) {
		exists, err := repo.ExistsByCPF(ctx, "52998224725", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("excludes the given person ID", func(t *testing.T) {
		exists, err := repo.ExistsByCPF(ctx, "11144477735", person.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("still reported for a different person ID", func(t *testing.T) {
		exists, err := repo.ExistsByCPF(ctx, "11144477735", person.ID+1)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestGormPersonRepository_ExistsByEmail(t *testing.T) {
	db := setupPersonTestDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	person := newStoredPerson(t, "11144477735", "maria@example.com")
	require.NoError(t, repo.Create(ctx, person))

	t.Run("exists for stored email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "maria@example.com", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("does not exist for unknown email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "other@example.com", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("excludes the given person ID", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "maria@example.com", person.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
