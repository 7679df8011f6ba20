package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// UserRepository defines persistence for user accounts. It is the credential
// store of the auth core: lookups are read-only from the authenticator's
// perspective.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}
