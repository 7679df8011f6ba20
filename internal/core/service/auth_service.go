package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/todo-service/internal/api/metrics"
	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/password"
	"github.com/taskvault/todo-service/internal/core/ports"
	"github.com/taskvault/todo-service/internal/core/token"
)

// AuthService implements registration and login. Login is the only place that
// reads password digests; no digest ever crosses this boundary.
type AuthService struct {
	users    ports.UserRepository
	codec    *token.Codec
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

// NewAuthService wires the authenticator. throttle and audit may be nil, in
// which case login throttling and audit recording are disabled.
func NewAuthService(users ports.UserRepository, codec *token.Codec, throttle ports.LoginThrottle, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, throttle: throttle, audit: audit, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: hash,
		Role:           role,
		IsActive:       true,
		PhoneNumber:    input.PhoneNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	s.record(domain.AuditEvent{Action: domain.AuditRegister, Username: created.Username, UserID: created.ID, Outcome: domain.AuditOK})
	return created, nil
}

// Login authenticates username/password and issues a signed access token.
// Unknown username, wrong password and deactivated account all surface as
// domain.ErrInvalidCredentials so responses cannot be used to enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, error) {
	if username == "" || pass == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooMany(ctx, username)
		if err != nil {
			// Throttling is best-effort: a throttle outage must not lock
			// every account out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			s.record(domain.AuditEvent{Action: domain.AuditLogin, Username: username, Outcome: domain.AuditThrottle})
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", s.loginFailed(ctx, username, "unknown user")
		}
		return "", err
	}
	if !user.IsActive {
		return "", s.loginFailed(ctx, username, "account deactivated")
	}
	if !password.Verify(pass, user.HashedPassword) {
		return "", s.loginFailed(ctx, username, "wrong password")
	}

	signed, err := s.codec.Issue(domain.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("login succeeded")
	s.record(domain.AuditEvent{Action: domain.AuditLogin, Username: user.Username, UserID: user.ID, Outcome: domain.AuditOK})
	return signed, nil
}

// loginFailed funnels every credential failure through one path so the
// caller-visible result is identical regardless of cause. The cause is kept
// for the audit trail only.
func (s *AuthService) loginFailed(ctx context.Context, username, cause string) error {
	if s.throttle != nil {
		if err := s.throttle.NoteFailure(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle update failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.logger.Info().Str("username", username).Str("cause", cause).Msg("login rejected")
	s.record(domain.AuditEvent{Action: domain.AuditLogin, Username: username, Outcome: domain.AuditDenied, Detail: cause})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.At = time.Now().UTC()
	s.audit.Record(event)
}
