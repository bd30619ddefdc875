package persistence

import (
	"context"
	"testing"

	"github.com/peoplemanager/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUnitOfWork_CommitPersists(t *testing.T) {
	db := setupPersonTestDB(t)
	uow := NewGormUnitOfWork(db)
	ctx := context.Background()

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)

	person := newStoredPerson(t, "11144477735", "")
	require.NoError(t, tx.People().Create(ctx, person))
	require.NoError(t, tx.Commit())

	found, err := NewGormPersonRepository(db).FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "11144477735", found.CPF)
}

func TestGormUnitOfWork_RollbackDiscards(t *testing.T) {
	db := setupPersonTestDB(t)
	uow := NewGormUnitOfWork(db)
	ctx := context.Background()

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)

	person := newStoredPerson(t, "11144477735", "")
	require.NoError(t, tx.People().Create(ctx, person))
	require.NoError(t, tx.Rollback())

	_, err = NewGormPersonRepository(db).FindByID(ctx, person.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUnitOfWork_IndependentTransactions(t *testing.T) {
	db := setupPersonTestDB(t)
	uow := NewGormUnitOfWork(db)
	ctx := context.Background()

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)
	first := newStoredPerson(t, "11144477735", "")
	require.NoError(t, tx.People().Create(ctx, first))
	require.NoError(t, tx.Rollback())

	tx, err = uow.Begin(ctx)
	require.NoError(t, err)
	second := newStoredPerson(t, "52998224725", "")
	require.NoError(t, tx.People().Create(ctx, second))
	require.NoError(t, tx.Commit())

	persons, err := NewGormPersonRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "52998224725", persons[0].CPF)
}
