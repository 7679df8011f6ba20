package domain

import "time"

// Audit actions recorded by the service.
const (
	AuditLogin          = "login"
	AuditRegister       = "register"
	AuditPasswordChange = "password_change"
	AuditAdminDelete    = "admin_delete_todo"
)

// Audit outcomes.
const (
	AuditOK       = "ok"
	AuditDenied   = "denied"
	AuditThrottle = "throttled"
)

// AuditEvent is one entry in the security audit trail. Events are recorded
// asynchronously; the request that produced one never waits on its write.
type AuditEvent struct {
	Action   string    `json:"action"`
	Username string    `json:"username"`
	UserID   int64     `json:"user_id,omitempty"`
	Outcome  string    `json:"outcome"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}
