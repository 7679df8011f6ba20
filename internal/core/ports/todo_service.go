package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// TodoInput carries the mutable fields of a todo item.
type TodoInput struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

// TodoService is the owner-scoped todo surface plus the admin-only
// operations. Every method takes the caller's resolved identity and applies
// the authorization policy before touching storage.
type TodoService interface {
	List(ctx context.Context, caller *domain.Identity) ([]*domain.Todo, error)
	Get(ctx context.Context, caller *domain.Identity, todoID int64) (*domain.Todo, error)
	Create(ctx context.Context, caller *domain.Identity, input TodoInput) (*domain.Todo, error)
	Update(ctx context.Context, caller *domain.Identity, todoID int64, input TodoInput) error
	Delete(ctx context.Context, caller *domain.Identity, todoID int64) error

	// Admin surface: list every todo, delete any todo.
	ListAll(ctx context.Context, caller *domain.Identity) ([]*domain.Todo, error)
	DeleteAny(ctx context.Context, caller *domain.Identity, todoID int64) error
}
