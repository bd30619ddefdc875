package persistence

import (
	"context"

	"github.com/peoplemanager/backend/internal/domain/people"
	"gorm.io/gorm"
)

// GormUnitOfWork implements people.UnitOfWork on top of manual GORM
// transactions. Each Begin opens a fresh transaction; the returned Tx
// hands out repositories bound to it.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Begin starts a new transaction
func (u *GormUnitOfWork) Begin(ctx context.Context) (people.Tx, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

type gormTx struct {
	tx *gorm.DB
}

// People returns a person repository bound to this transaction
func (t *gormTx) People() people.Repository {
	return NewGormPersonRepository(t.tx)
}

// Commit commits the transaction
func (t *gormTx) Commit() error {
	return t.tx.Commit().Error
}

// Rollback aborts the transaction
func (t *gormTx) Rollback() error {
	return t.tx.Rollback().Error
}

// Ensure GormUnitOfWork implements people.UnitOfWork
var _ people.UnitOfWork = (*GormUnitOfWork)(nil)
