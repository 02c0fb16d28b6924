package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/ports"
)

// EmployeeService implements employee profile management.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	files  ports.FileStore
	replay ports.ReplayStore
	log    zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, files ports.FileStore, replay ports.ReplayStore, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, files: files, replay: replay, log: log}
}

// Create stores a new employee profile. When an idempotency key is supplied
// and already seen, the originally created profile is returned without a
// second insert or a second stored image.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*ports.CreateEmployeeResult, error) {
	if input.Email == "" || input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: please provide all the mandatory details about the employee", domain.ErrValidation)
	}

	if input.IdempotencyKey != "" && s.replay != nil {
		id, ok, err := s.replay.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if ok {
			existing, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			s.log.Info().Str("idempotency_key", input.IdempotencyKey).Str("employee_id", id).Msg("idempotent replay")
			return &ports.CreateEmployeeResult{Employee: existing, AlreadyExisted: true}, nil
		}
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmployeeExists
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	username := domain.DeriveUsername(input.FirstName, input.LastName)

	employee := &domain.Employee{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Username:        username,
		Role:            input.Role,
		Email:           input.Email,
		Phone:           input.Phone,
		MobilePhone:     input.MobilePhone,
		Address:         input.Address,
		LinkedinProfile: input.LinkedinProfile,
	}

	if input.ProfileImage != nil {
		path, err := s.files.Save(ctx, username, input.ProfileImage.Filename, input.ProfileImage.Reader)
		if err != nil {
			return nil, fmt.Errorf("store profile image: %w", err)
		}
		employee.ProfileImage = path
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.replay != nil {
		if err := s.replay.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			// The record is already persisted; a failed replay marker only
			// loses replay protection for this key.
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("replay marker not stored")
		}
	}

	s.log.Info().Str("employee_id", created.ID).Str("username", created.Username).Msg("employee created")
	return &ports.CreateEmployeeResult{Employee: created}, nil
}

// GetByUsername returns the public profile for a username.
func (s *EmployeeService) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return s.repo.FindByUsername(ctx, username)
}

// List returns all employee profiles.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

// Update edits an existing profile, recomputing the username from the
// submitted name pair. The email-conflict check excludes the record itself.
func (s *EmployeeService) Update(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	if input.Email == "" || input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: please provide all the mandatory details about the employee", domain.ErrValidation)
	}

	employee, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if other, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		if other.ID != employee.ID {
			return nil, domain.ErrEmployeeExists
		}
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	username := domain.DeriveUsername(input.FirstName, input.LastName)

	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Username = username
	employee.Email = input.Email
	if input.Role != "" {
		employee.Role = input.Role
	}
	if input.Phone != "" {
		employee.Phone = input.Phone
	}
	if input.MobilePhone != "" {
		employee.MobilePhone = input.MobilePhone
	}
	if input.Address != "" {
		employee.Address = input.Address
	}
	if input.LinkedinProfile != "" {
		employee.LinkedinProfile = input.LinkedinProfile
	}

	if input.ProfileImage != nil {
		path, err := s.files.Save(ctx, username, input.ProfileImage.Filename, input.ProfileImage.Reader)
		if err != nil {
			return nil, fmt.Errorf("store profile image: %w", err)
		}
		employee.ProfileImage = path
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes a profile permanently.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
