// Package authz holds the pure policy predicates applied by every protected
// operation. All checks fail closed: a nil identity or an empty role denies.
package authz

import "github.com/taskvault/todo-service/internal/core/domain"

// RequireAuthenticated fails unless id carries a resolved identity.
func RequireAuthenticated(id *domain.Identity) error {
	if id == nil || id.UserID == 0 {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireOwner fails unless id is authenticated and owns the resource.
func RequireOwner(id *domain.Identity, ownerID int64) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if id.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireRole fails unless id is authenticated and its role equals role
// exactly (case-sensitive). An identity with no role never passes.
func RequireRole(id *domain.Identity, role string) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if role == "" || id.Role != role {
		return domain.ErrForbidden
	}
	return nil
}
