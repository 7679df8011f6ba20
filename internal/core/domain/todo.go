package domain

import (
	"errors"
	"time"
)

var ErrTodoNotFound = errors.New("todo not found")

// Todo is a single task item owned by exactly one user. Ownership is the
// authorization boundary: non-admin callers only ever see their own todos.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Complete    bool      `json:"complete"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
