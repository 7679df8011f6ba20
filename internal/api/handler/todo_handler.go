package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-service/internal/core/ports"
)

// TodoHandler handles the owner-scoped todo routes.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

type todoRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=64"`
	Description string `json:"description" validate:"required,min=3,max=255"`
	Priority    int    `json:"priority" validate:"gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid todo id")
	}
	return id, nil
}

// List handles GET /todos — the caller's own todos.
//
// @Summary      List my todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:id.
//
// @Summary      Get one of my todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), id, todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Create handles POST /todos.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoRequest  true  "Todo fields"
// @Success      201   {object}  domain.Todo
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), id, ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /todos/:id.
//
// @Summary      Update one of my todos
// @Tags         todos
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Todo id"
// @Param        body  body  todoRequest  true  "Todo fields"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, todoID, ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /todos/:id.
//
// @Summary      Delete one of my todos
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, todoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
