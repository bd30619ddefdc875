package people

import (
	"context"
	"errors"
	"time"

	"github.com/peoplemanager/backend/internal/domain/people"
	"github.com/peoplemanager/backend/internal/domain/shared"
	"github.com/peoplemanager/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	personRepo people.Repository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service.
// blacklist may be nil, in which case logout is a client-side concern.
func NewAuthService(
	personRepo people.Repository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		personRepo: personRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a person by CPF and password and returns a signed
// token. A miss on either factor yields the same generic error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	cpf := people.NormalizeCPF(input.CPF)
	s.logger.Info("Login attempt", zap.String("cpf", maskCPF(cpf)))

	person, err := s.personRepo.FindByCPF(ctx, cpf)
	if err != nil {
		// Only a genuine miss maps to the generic credentials error,
		// infrastructure failures must not look like a bad login
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Person not found during login", zap.String("cpf", maskCPF(cpf)))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid CPF or password")
		}
		s.logger.Error("Failed to find person during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to authenticate")
	}

	if !person.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.Int64("person_id", person.ID))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid CPF or password")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		PersonID: person.ID,
		Name:     person.Name,
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Person logged in", zap.Int64("person_id", person.ID))

	return &LoginResult{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		TokenType: token.TokenType,
		Person:    *toPersonDTO(person),
	}, nil
}

// Logout revokes the presented token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if s.blacklist == nil || input.TokenJTI == "" {
		return nil
	}

	ttl := time.Until(input.ExpiresAt)
	if err := s.blacklist.Revoke(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Error("Failed to revoke token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}

	s.logger.Info("Token revoked", zap.String("jti", input.TokenJTI))

	return nil
}

// GetCurrentPerson returns the authenticated principal's record
func (s *AuthService) GetCurrentPerson(ctx context.Context, input CurrentPersonInput) (*PersonDTO, error) {
	person, err := s.personRepo.FindByID(ctx, input.PersonID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PERSON_NOT_FOUND", "Person not found")
		}
		s.logger.Error("Failed to find person", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find person")
	}

	return toPersonDTO(person), nil
}

// maskCPF hides the middle digits of a CPF for logging
func maskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***"
	}
	return cpf[:3] + "*****" + cpf[8:]
}
