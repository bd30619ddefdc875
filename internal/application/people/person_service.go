package people

import (
	"context"
	"errors"

	"github.com/peoplemanager/backend/internal/domain/people"
	"github.com/peoplemanager/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PersonService handles person management operations
type PersonService struct {
	uow        people.UnitOfWork
	personRepo people.Repository
	logger     *zap.Logger
}

// NewPersonService creates a new person service
func NewPersonService(
	uow people.UnitOfWork,
	personRepo people.Repository,
	logger *zap.Logger,
) *PersonService {
	return &PersonService{
		uow:        uow,
		personRepo: personRepo,
		logger:     logger,
	}
}

// Create validates and persists a new person inside a transaction
func (s *PersonService) Create(ctx context.Context, input CreatePersonInput) (*PersonDTO, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to start transaction")
	}

	dto, err := s.create(ctx, tx.People(), input)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Rollback failed after create error", zap.Error(rbErr))
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("Failed to commit person creation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save person")
	}

	s.logger.Info("Person created",
		zap.Int64("person_id", dto.ID),
		zap.String("name", dto.Name))

	return dto, nil
}

func (s *PersonService) create(ctx context.Context, repo people.Repository, input CreatePersonInput) (*PersonDTO, error) {
	// Field checks run before uniqueness checks, cheapest first
	if err := people.ValidateBirthDate(input.BirthDate); err != nil {
		return nil, err
	}
	if err := people.ValidateCPF(input.CPF); err != nil {
		return nil, err
	}
	if input.Email != nil {
		if err := people.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if err := people.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	cpf := people.NormalizeCPF(input.CPF)
	exists, err := repo.ExistsByCPF(ctx, cpf, 0)
	if err != nil {
		s.logger.Error("Failed to check CPF uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check CPF uniqueness")
	}
	if exists {
		return nil, shared.NewDomainError("CPF_ALREADY_EXISTS", "CPF is already registered")
	}

	if input.Email != nil {
		exists, err := repo.ExistsByEmail(ctx, people.NormalizeEmail(*input.Email), 0)
		if err != nil {
			s.logger.Error("Failed to check email uniqueness", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email uniqueness")
		}
		if exists {
			return nil, shared.NewDomainError("EMAIL_ALREADY_EXISTS", "Email is already registered")
		}
	}

	person, err := people.NewPerson(input.Name, input.CPF, input.Password, input.BirthDate)
	if err != nil {
		return nil, err
	}

	if err := s.applyOptionalFields(person, input); err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, person); err != nil {
		s.logger.Error("Failed to persist person", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save person")
	}

	return toPersonDTO(person), nil
}

func (s *PersonService) applyOptionalFields(person *people.Person, input CreatePersonInput) error {
	if input.Gender != nil {
		gender, err := people.ParseGender(*input.Gender)
		if err != nil {
			return err
		}
		person.SetGender(gender)
	}
	if input.Email != nil {
		if err := person.SetEmail(*input.Email); err != nil {
			return err
		}
	}
	if input.Naturality != nil {
		person.SetNaturality(*input.Naturality)
	}
	if input.Nationality != nil {
		person.SetNationality(*input.Nationality)
	}
	if input.Address != nil {
		person.SetAddress(*input.Address)
	}
	return nil
}

// GetByID returns a live person by ID
func (s *PersonService) GetByID(ctx context.Context, id int64) (*PersonDTO, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
		}
		s.logger.Error("Failed to find person", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find person")
	}

	return toPersonDTO(person), nil
}

// GetByCPF returns a live person by CPF (masked or bare)
func (s *PersonService) GetByCPF(ctx context.Context, cpf string) (*PersonDTO, error) {
	person, err := s.personRepo.FindByCPF(ctx, people.NormalizeCPF(cpf))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
		}
		s.logger.Error("Failed to find person by CPF", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find person")
	}

	return toPersonDTO(person), nil
}

// List returns all live people
func (s *PersonService) List(ctx context.Context) ([]PersonDTO, error) {
	persons, err := s.personRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list people", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list people")
	}

	dtos := make([]PersonDTO, 0, len(persons))
	for _, person := range persons {
		dtos = append(dtos, *toPersonDTO(person))
	}

	return dtos, nil
}

// Update applies a partial update to a person inside a transaction.
// Nil patch fields keep their current value.
func (s *PersonService) Update(ctx context.Context, id int64, input UpdatePersonInput) (*PersonDTO, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to start transaction")
	}

	dto, err := s.update(ctx, tx.People(), id, input)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Rollback failed after update error", zap.Error(rbErr))
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("Failed to commit person update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save person")
	}

	s.logger.Info("Person updated", zap.Int64("person_id", id))

	return dto, nil
}

func (s *PersonService) update(ctx context.Context, repo people.Repository, id int64, input UpdatePersonInput) (*PersonDTO, error) {
	person, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
		}
		s.logger.Error("Failed to find person", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find person")
	}

	if input.BirthDate != nil {
		if err := person.SetBirthDate(*input.BirthDate); err != nil {
			return nil, err
		}
	}

	if input.CPF != nil {
		newCPF := people.NormalizeCPF(*input.CPF)
		if newCPF != person.CPF {
			if err := person.SetCPF(*input.CPF); err != nil {
				return nil, err
			}

			exists, err := repo.ExistsByCPF(ctx, newCPF, id)
			if err != nil {
				s.logger.Error("Failed to check CPF uniqueness", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check CPF uniqueness")
			}
			if exists {
				return nil, shared.NewDomainError("CPF_ALREADY_EXISTS", "CPF is already registered")
			}
		}
	}

	if input.Email != nil {
		newEmail := people.NormalizeEmail(*input.Email)
		changed := person.Email == nil || *person.Email != newEmail
		if err := person.SetEmail(*input.Email); err != nil {
			return nil, err
		}

		if changed {
			exists, err := repo.ExistsByEmail(ctx, *person.Email, id)
			if err != nil {
				s.logger.Error("Failed to check email uniqueness", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email uniqueness")
			}
			if exists {
				return nil, shared.NewDomainError("EMAIL_ALREADY_EXISTS", "Email is already registered")
			}
		}
	}

	if input.Name != nil {
		if err := person.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Gender != nil {
		gender, err := people.ParseGender(*input.Gender)
		if err != nil {
			return nil, err
		}
		person.SetGender(gender)
	}
	if input.Naturality != nil {
		person.SetNaturality(*input.Naturality)
	}
	if input.Nationality != nil {
		person.SetNationality(*input.Nationality)
	}
	if input.Address != nil {
		person.SetAddress(*input.Address)
	}

	if err := repo.Update(ctx, person); err != nil {
		s.logger.Error("Failed to persist person update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save person")
	}

	return toPersonDTO(person), nil
}

// Delete soft-deletes a person inside a transaction. The record
// disappears from reads but the row is kept.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin transaction", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to start transaction")
	}

	if err := s.delete(ctx, tx.People(), id); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Rollback failed after delete error", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("Failed to commit person deletion", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete person")
	}

	s.logger.Info("Person deleted", zap.Int64("person_id", id))

	return nil
}

func (s *PersonService) delete(ctx context.Context, repo people.Repository, id int64) error {
	person, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
		}
		s.logger.Error("Failed to find person", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to find person")
	}

	if err := person.MarkDeleted(); err != nil {
		return shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
	}

	if err := repo.Update(ctx, person); err != nil {
		s.logger.Error("Failed to persist person deletion", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete person")
	}

	return nil
}

// toPersonDTO maps a domain person to its DTO
func toPersonDTO(person *people.Person) *PersonDTO {
	dto := &PersonDTO{
		ID:          person.ID,
		Name:        person.Name,
		CPF:         person.CPF,
		BirthDate:   person.BirthDate,
		Email:       person.Email,
		Naturality:  person.Naturality,
		Nationality: person.Nationality,
		Address:     person.Address,
		CreatedAt:   person.CreatedAt,
		UpdatedAt:   person.UpdatedAt,
	}
	if person.Gender != nil {
		gender := string(*person.Gender)
		dto.Gender = &gender
	}
	return dto
}
