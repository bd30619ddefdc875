package people

import (
	"context"
)

// Repository defines the interface for person persistence.
// Every lookup excludes soft-deleted records.
type Repository interface {
	// Create persists a new person and assigns its ID
	Create(ctx context.Context, person *Person) error

	// Update persists changes to an existing person
	Update(ctx context.Context, person *Person) error

	// FindByID finds a live person by ID
	FindByID(ctx context.Context, id int64) (*Person, error)

	// FindByCPF finds a live person by canonical CPF
	FindByCPF(ctx context.Context, cpf string) (*Person, error)

	// FindAll returns all live people
	FindAll(ctx context.Context) ([]*Person, error)

	// ExistsByCPF checks if a live person other than excludeID uses the CPF.
	// Pass excludeID = 0 to check against every record.
	ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error)

	// ExistsByEmail checks if a live person other than excludeID uses the email.
	// Pass excludeID = 0 to check against every record.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}

// Tx is a transaction in progress. The embedded Repository is bound to
// the transaction; Commit or Rollback must be called exactly once.
type Tx interface {
	People() Repository
	Commit() error
	Rollback() error
}

// UnitOfWork starts transactions for multi-step writes
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}
