package ports

import (
	"context"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Record
// never blocks the calling request; an event that cannot be accepted is
// dropped and logged by the implementation.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
