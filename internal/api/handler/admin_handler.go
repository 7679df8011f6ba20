package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-service/internal/core/ports"
)

// AdminHandler exposes the admin-only todo surface. Routes are additionally
// gated by the RBAC middleware; the service re-checks the role so the policy
// holds even if a route is wired without the middleware.
type AdminHandler struct {
	service ports.TodoService
}

func NewAdminHandler(service ports.TodoService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListAll handles GET /admin/todos — every todo of every user.
//
// @Summary      List all todos (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/todos [get]
func (h *AdminHandler) ListAll(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.service.ListAll(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// DeleteAny handles DELETE /admin/todos/:id — delete any user's todo.
//
// @Summary      Delete any todo (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/todos/{id} [delete]
func (h *AdminHandler) DeleteAny(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAny(c.Request().Context(), id, todoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
