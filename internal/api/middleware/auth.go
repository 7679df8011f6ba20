package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-service/internal/api/metrics"
	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/token"
)

// IdentityKey is the sole context key under which the resolved identity is
// stored. The middleware resolves a request's identity exactly once; handlers
// read the same value for the rest of the request.
const IdentityKey = "identity"

// Auth validates the bearer token and injects the typed identity into the
// request context. Every failure mode (missing header, malformed token, bad
// signature, expiry) produces the same 401 so the response does not reveal
// which check failed.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := codec.Decode(parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(IdentityKey, &id)
			return next(c)
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	default:
		return "malformed"
	}
}

// Identity returns the identity resolved by Auth, or nil when the middleware
// did not run or rejected the request.
func Identity(c echo.Context) *domain.Identity {
	id, _ := c.Get(IdentityKey).(*domain.Identity)
	return id
}
