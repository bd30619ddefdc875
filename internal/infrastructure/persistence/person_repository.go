package persistence

import (
	"context"
	"errors"

	"github.com/peoplemanager/backend/internal/domain/people"
	"github.com/peoplemanager/backend/internal/domain/shared"
	"github.com/peoplemanager/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPersonRepository implements people.Repository using GORM.
// Every query filters out soft-deleted rows.
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Create persists a new person and copies back the assigned ID
func (r *GormPersonRepository) Create(ctx context.Context, person *people.Person) error {
	model := models.PersonModelFromDomain(person)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	person.ID = model.ID
	return nil
}

// Update persists changes to an existing person
func (r *GormPersonRepository) Update(ctx context.Context, person *people.Person) error {
	model := models.PersonModelFromDomain(person)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a live person by ID
func (r *GormPersonRepository) FindByID(ctx context.Context, id int64) (*people.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCPF finds a live person by canonical CPF
func (r *GormPersonRepository) FindByCPF(ctx context.Context, cpf string) (*people.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("cpf = ? AND deleted_at IS NULL", cpf).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all live people ordered by ID
func (r *GormPersonRepository) FindAll(ctx context.Context) ([]*people.Person, error) {
	var personModels []models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("id").
		Find(&personModels).Error; err != nil {
		return nil, err
	}

	persons := make([]*people.Person, 0, len(personModels))
	for i := range personModels {
		persons = append(persons, personModels[i].ToDomain())
	}
	return persons, nil
}

// ExistsByCPF checks if a live person other than excludeID uses the CPF
func (r *GormPersonRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.PersonModel{}).
		Where("cpf = ? AND deleted_at IS NULL", cpf)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks if a live person other than excludeID uses the email
func (r *GormPersonRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.PersonModel{}).
		Where("email = ? AND deleted_at IS NULL", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormPersonRepository implements people.Repository
var _ people.Repository = (*GormPersonRepository)(nil)
