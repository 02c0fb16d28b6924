package ports

import (
	"context"
	"io"

	"github.com/staffdesk/directory-api/internal/core/domain"
)

// ProfileImageInput is an uploaded image waiting to be stored. Filename is
// the client-supplied name, used only for its extension.
type ProfileImageInput struct {
	Filename string
	Reader   io.Reader
}

// CreateEmployeeInput carries the fields accepted on employee creation.
// IdempotencyKey, when non-empty, makes the create replay-safe: a repeated
// key returns the originally created profile without a second insert.
type CreateEmployeeInput struct {
	FirstName       string
	LastName        string
	Email           string
	Role            string
	Phone           string
	MobilePhone     string
	Address         string
	LinkedinProfile string
	ProfileImage    *ProfileImageInput
	IdempotencyKey  string
}

// UpdateEmployeeInput carries the fields accepted on employee edit.
type UpdateEmployeeInput struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Role            string
	Phone           string
	MobilePhone     string
	Address         string
	LinkedinProfile string
	ProfileImage    *ProfileImageInput
}

// CreateEmployeeResult reports the stored profile and whether it was an
// idempotent replay of an earlier request.
type CreateEmployeeResult struct {
	Employee       *domain.Employee
	AlreadyExisted bool
}

// EmployeeService covers employee profile management.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*CreateEmployeeResult, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
