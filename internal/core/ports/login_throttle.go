package ports

import "context"

// LoginThrottle limits repeated failed logins per username.
type LoginThrottle interface {
	// TooMany reports whether username has exceeded the failure budget.
	TooMany(ctx context.Context, username string) (bool, error)
	// NoteFailure records one failed attempt for username.
	NoteFailure(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}
