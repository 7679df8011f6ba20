package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/ports"
)

type stubTodoRepo struct {
	todos  map[int64]*domain.Todo
	nextID int64
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[int64]*domain.Todo)}
}

func cloneTodo(t *domain.Todo) *domain.Todo {
	clone := *t
	return &clone
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.nextID++
	created := cloneTodo(todo)
	created.ID = r.nextID
	r.todos[created.ID] = cloneTodo(created)
	return created, nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id int64) (*domain.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	return cloneTodo(todo), nil
}

func (r *stubTodoRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, todo := range r.todos {
		if todo.OwnerID == ownerID {
			out = append(out, cloneTodo(todo))
		}
	}
	return out, nil
}

func (r *stubTodoRepo) ListAll(_ context.Context) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, todo := range r.todos {
		out = append(out, cloneTodo(todo))
	}
	return out, nil
}

func (r *stubTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return domain.ErrTodoNotFound
	}
	r.todos[todo.ID] = cloneTodo(todo)
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.todos[id]; !ok {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

var (
	aliceID = &domain.Identity{UserID: 1, Username: "alice", Role: "user"}
	bobID   = &domain.Identity{UserID: 2, Username: "bob", Role: "user"}
	adminID = &domain.Identity{UserID: 9, Username: "root", Role: "admin"}
)

func seedTodo(t *testing.T, svc *TodoService, caller *domain.Identity, title string) *domain.Todo {
	t.Helper()
	todo, err := svc.Create(context.Background(), caller, ports.TodoInput{
		Title:       title,
		Description: "some description",
		Priority:    3,
	})
	if err != nil {
		t.Fatalf("create todo: %v", err)
	}
	return todo
}

func TestTodoService_CreateAndList_ScopedToOwner(t *testing.T) {
	svc := NewTodoService(newStubTodoRepo(), nil, zerolog.Nop())

	mine := seedTodo(t, svc, aliceID, "alice task")
	if mine.OwnerID != aliceID.UserID {
		t.Fatalf("owner must be the caller, got %d", mine.OwnerID)
	}
	seedTodo(t, svc, bobID, "bob task")

	todos, err := svc.List(context.Background(), aliceID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "alice task" {
		t.Fatalf("expected only alice's todo, got %+v", todos)
	}
}

func TestTodoService_Get_OtherOwnersTodoReadsAsAbsent(t *testing.T) {
	svc := NewTodoService(newStubTodoRepo(), nil, zerolog.Nop())
	todo := seedTodo(t, svc, aliceID, "alice task")

	if _, err := svc.Get(context.Background(), aliceID, todo.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.Get(context.Background(), bobID, todo.ID); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound for foreign todo, got %v", err)
	}
	if _, err := svc.Get(context.Background(), aliceID, 999); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound for missing todo, got %v", err)
	}
}

func TestTodoService_Update_OwnerOnly(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, nil, zerolog.Nop())
	todo := seedTodo(t, svc, aliceID, "alice task")

	input := ports.TodoInput{Title: "updated", Description: "new description", Priority: 1, Complete: true}
	if err := svc.Update(context.Background(), bobID, todo.ID, input); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound for foreign update, got %v", err)
	}
	if err := svc.Update(context.Background(), aliceID, todo.ID, input); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got := repo.todos[todo.ID]; got.Title != "updated" || !got.Complete {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestTodoService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, nil, zerolog.Nop())
	todo := seedTodo(t, svc, aliceID, "alice task")

	if err := svc.Delete(context.Background(), bobID, todo.ID); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), aliceID, todo.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.todos) != 0 {
		t.Fatalf("todo not deleted")
	}
}

func TestTodoService_Unauthenticated(t *testing.T) {
	svc := NewTodoService(newStubTodoRepo(), nil, zerolog.Nop())

	if _, err := svc.List(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, ports.TodoInput{Title: "x"}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestTodoService_ListAll_AdminOnly(t *testing.T) {
	svc := NewTodoService(newStubTodoRepo(), nil, zerolog.Nop())
	seedTodo(t, svc, aliceID, "alice task")
	seedTodo(t, svc, bobID, "bob task")

	all, err := svc.ListAll(context.Background(), adminID)
	if err != nil {
		t.Fatalf("admin list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(all))
	}

	if _, err := svc.ListAll(context.Background(), aliceID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
}

func TestTodoService_DeleteAny_AdminOnly(t *testing.T) {
	repo := newStubTodoRepo()
	recorder := &stubRecorder{}
	svc := NewTodoService(repo, recorder, zerolog.Nop())
	todo := seedTodo(t, svc, bobID, "bob task")

	// Even the owner is refused on the admin surface when not admin.
	if err := svc.DeleteAny(context.Background(), bobID, todo.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin owner, got %v", err)
	}

	if err := svc.DeleteAny(context.Background(), adminID, todo.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(repo.todos) != 0 {
		t.Fatalf("todo not deleted")
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != domain.AuditAdminDelete {
		t.Fatalf("expected admin delete audit event, got %+v", recorder.events)
	}
}
