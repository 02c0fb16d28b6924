package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/ports"
)

// UserService implements account management and sign-in.
type UserService struct {
	repo  ports.UserRepository
	creds *CredentialService
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, creds *CredentialService, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, creds: creds, log: log}
}

// Create registers a new account. The unique email index is the
// authoritative uniqueness check; the FindByEmail pre-check only produces a
// friendlier error before the insert is attempted.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: please provide all the details about the user", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.creds.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// SignIn authenticates credentials and issues a session token. An unknown
// email and a wrong password produce the same error so responses cannot be
// used to probe which accounts exist.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.creds.ComparePassword(password, user.PasswordHash); err != nil {
		return nil, err
	}

	token, err := s.creds.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.SignInResult{Token: token, Role: user.Role, ID: user.ID}, nil
}

// GetInfo returns the account for the authenticated subject id.
func (s *UserService) GetInfo(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all accounts. Password hashes are stripped by serialization.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update edits an existing account. The email-conflict check excludes the
// record being updated, so re-submitting a user's own email is not a
// conflict. An empty password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ID == "" || input.Email == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: please provide all the details about the user", domain.ErrValidation)
	}

	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if other, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		if other.ID != user.ID {
			return nil, domain.ErrUserExists
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
		}
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := s.creds.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account permanently. There is no soft delete.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
