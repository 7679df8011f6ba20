package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/todo-service/internal/api/metrics"
	"github.com/taskvault/todo-service/internal/core/authz"
	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/ports"
)

type TodoService struct {
	repo   ports.TodoRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, audit ports.AuditRecorder, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, audit: audit, logger: logger}
}

func (s *TodoService) List(ctx context.Context, caller *domain.Identity) ([]*domain.Todo, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, caller.UserID)
}

func (s *TodoService) Get(ctx context.Context, caller *domain.Identity, todoID int64) (*domain.Todo, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	todo, err := s.repo.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	// Someone else's todo reads as absent so ids cannot be probed.
	if err := authz.RequireOwner(caller, todo.OwnerID); err != nil {
		return nil, domain.ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, caller *domain.Identity, input ports.TodoInput) (*domain.Todo, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Complete:    input.Complete,
		OwnerID:     caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", caller.UserID).Msg("failed to create todo")
		return nil, err
	}

	metrics.TodosCreatedTotal.Inc()
	s.logger.Info().Int64("todo_id", created.ID).Int64("owner_id", caller.UserID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, caller *domain.Identity, todoID int64, input ports.TodoInput) error {
	todo, err := s.Get(ctx, caller, todoID)
	if err != nil {
		return err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.Complete = input.Complete
	todo.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, caller *domain.Identity, todoID int64) error {
	if _, err := s.Get(ctx, caller, todoID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, todoID)
}

// ListAll returns every todo in the system. Admin only.
func (s *TodoService) ListAll(ctx context.Context, caller *domain.Identity) ([]*domain.Todo, error) {
	if err := authz.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}

// DeleteAny removes a todo regardless of owner. Admin only.
func (s *TodoService) DeleteAny(ctx context.Context, caller *domain.Identity, todoID int64) error {
	if err := authz.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	todo, err := s.repo.FindByID(ctx, todoID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, todo.ID); err != nil {
		return err
	}

	s.logger.Info().Int64("todo_id", todo.ID).Int64("owner_id", todo.OwnerID).Str("admin", caller.Username).Msg("todo deleted by admin")
	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Action:   domain.AuditAdminDelete,
			Username: caller.Username,
			UserID:   caller.UserID,
			Outcome:  domain.AuditOK,
			At:       time.Now().UTC(),
		})
	}
	return nil
}
