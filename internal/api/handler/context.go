package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-service/internal/api/middleware"
	"github.com/taskvault/todo-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a present, non-zero identity proves the
// middleware ran for this request.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id := middleware.Identity(c)
	if id == nil || id.UserID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
