package ports

import (
	"context"

	"github.com/staffdesk/directory-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
