// Package api wires the HTTP surface: routes, middleware, and the central
// error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskvault/todo-service/internal/api/handler"
	"github.com/taskvault/todo-service/internal/api/middleware"
	"github.com/taskvault/todo-service/internal/core/domain"
	"github.com/taskvault/todo-service/internal/core/ports"
	"github.com/taskvault/todo-service/internal/core/service"
	"github.com/taskvault/todo-service/internal/core/token"
	"github.com/taskvault/todo-service/internal/infrastructure/config"
	mongostore "github.com/taskvault/todo-service/internal/infrastructure/db/mongo"
	redisstore "github.com/taskvault/todo-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// audit may be nil when the audit pipeline is disabled (tests).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todoservice"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := mongostore.NewUserRepository(db)
	todoRepo := mongostore.NewTodoRepository(db)
	throttle := redisstore.NewLoginThrottle(rdb, cfg.Login.MaxFailures, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, codec, throttle, audit, log)
	todoService := service.NewTodoService(todoRepo, audit, log)
	userService := service.NewUserService(userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(todoService)

	requireAuth := middleware.Auth(codec)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)

	// --- Todo routes (owner-scoped) ---
	todos := e.Group("/todos", requireAuth)
	todos.GET("", todoHandler.List)
	todos.GET("/:id", todoHandler.Get)
	todos.POST("", todoHandler.Create)
	todos.PUT("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- User self-service ---
	users := e.Group("/users", requireAuth)
	users.GET("/me", userHandler.Me)
	users.PUT("/me/password", userHandler.ChangePassword)

	// --- Admin surface ---
	admin := e.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/todos", adminHandler.ListAll)
	admin.DELETE("/todos/:id", adminHandler.DeleteAny)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
