package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/todo-service/internal/core/authz"
	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/password"
	"github.com/taskvault/todo-service/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, caller *domain.Identity) (*domain.User, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, caller.UserID)
}

// ChangePassword re-authenticates the caller with the current password before
// storing a hash of the new one. A wrong current password is reported the
// same way as a failed login.
func (s *UserService) ChangePassword(ctx context.Context, caller *domain.Identity, current, next string) error {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if !password.Verify(current, user.HashedPassword) {
		return domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(next)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("password changed")
	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Action:   domain.AuditPasswordChange,
			Username: user.Username,
			UserID:   user.ID,
			Outcome:  domain.AuditOK,
			At:       time.Now().UTC(),
		})
	}
	return nil
}
