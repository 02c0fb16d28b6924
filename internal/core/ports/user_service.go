package ports

import (
	"context"

	"github.com/staffdesk/directory-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted on sign-up.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the fields accepted on account edit.
// Password is optional; when empty the stored hash is kept.
type UpdateUserInput struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// SignInResult is what a successful authentication returns to the client.
type SignInResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id"`
}

// UserService covers account management and authentication.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	GetInfo(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
