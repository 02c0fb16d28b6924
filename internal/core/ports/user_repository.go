package ports

import (
	"context"

	"github.com/staffdesk/directory-api/internal/core/domain"
)

// UserRepository defines persistence for account records.
// Create must surface domain.ErrUserExists when the unique email index
// rejects the insert; lookups return domain.ErrUserNotFound when absent.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
