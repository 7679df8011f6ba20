package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	PhoneNumber string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login exchanges credentials for a signed access token. Unknown
	// username, wrong password and deactivated account are indistinguishable
	// to the caller: all return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
