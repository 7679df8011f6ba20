package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

type UserService interface {
	// Profile returns the caller's own account, password digest excluded by
	// the domain model's serialization rules.
	Profile(ctx context.Context, caller *domain.Identity) (*domain.User, error)
	// ChangePassword verifies current before storing a fresh hash of next.
	ChangePassword(ctx context.Context, caller *domain.Identity, current, next string) error
}
