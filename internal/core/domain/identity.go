package domain

import "errors"

var ErrUnauthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")

// Identity is the verified claim set carried by a bearer token for the
// lifetime of one request. It is resolved once by the auth middleware and
// treated as an immutable value from then on.
//
// Role may be empty: tokens minted before roles were added carry no role
// claim. Decoding such a token still succeeds; every role check on it fails.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}
