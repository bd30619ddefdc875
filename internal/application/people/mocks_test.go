package people

import (
	"context"

	"github.com/peoplemanager/backend/internal/domain/people"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of people.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, person *people.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, person *people.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*people.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.Person), args.Error(1)
}

func (m *MockRepository) FindByCPF(ctx context.Context, cpf string) (*people.Person, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.Person), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*people.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*people.Person), args.Error(1)
}

func (m *MockRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	args := m.Called(ctx, cpf, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockTx is a mock implementation of people.Tx
type MockTx struct {
	mock.Mock
	repo *MockRepository
}

func (m *MockTx) People() people.Repository {
	return m.repo
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUnitOfWork is a mock implementation of people.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	tx *MockTx
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (people.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(people.Tx), args.Error(1)
}

// newMockUnitOfWork wires a unit of work whose transaction is bound to repo
func newMockUnitOfWork(repo *MockRepository) (*MockUnitOfWork, *MockTx) {
	tx := &MockTx{repo: repo}
	uow := &MockUnitOfWork{tx: tx}
	uow.On("Begin", mock.Anything).Return(tx, nil)
	return uow, tx
}
