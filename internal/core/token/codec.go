// Package token issues and verifies the signed bearer tokens that carry a
// request identity. Tokens are self-contained JWTs signed with HS256 and a
// process-wide secret; verification is exact-match with no clock-skew
// allowance.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskvault/todo-service/internal/core/domain"
)

// DefaultTTL is the policy lifetime of an access token.
const DefaultTTL = 20 * time.Minute

var ErrMalformed = errors.New("token malformed")
var ErrBadSignature = errors.New("token signature invalid")
var ErrExpired = errors.New("token expired")

// claims is the canonical claim schema. Subject carries the username,
// user_id the numeric id. role is optional so tokens minted before role
// support decode cleanly (the identity then carries an empty role).
type claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies identity tokens. The secret is injected at
// construction so instances can run with distinct keys (rotation, tests).
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for id, valid from now until now+ttl.
func (c *Codec) Issue(id domain.Identity) (string, error) {
	now := c.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: id.UserID,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return t.SignedString(c.secret)
}

// Decode verifies text and returns the identity it carries.
// Failures are reported as exactly one of ErrBadSignature (wrong or missing
// signature, or a wrong algorithm, "none" included), ErrExpired, or
// ErrMalformed (unparseable, or missing subject/user_id).
func (c *Codec) Decode(text string) (domain.Identity, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(text, &cl, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, ErrBadSignature
		default:
			return domain.Identity{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrBadSignature
	}
	if cl.Subject == "" || cl.UserID == 0 {
		return domain.Identity{}, ErrMalformed
	}

	return domain.Identity{
		UserID:   cl.UserID,
		Username: cl.Subject,
		Role:     cl.Role,
	}, nil
}
