package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// TodoRepository defines persistence for todo items. Ownership checks live in
// the service layer; the repository stores and fetches records by key.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Todo, error)
	ListAll(ctx context.Context) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id int64) error
}
