package http

import (
	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/config"
	"github.com/ShelcyG/todo-app/internal/http/handlers"
	"github.com/ShelcyG/todo-app/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes mounts the health endpoints and the API. Task routes run
// behind BearerToken, which classifies credentials without ever rejecting a
// request; the handlers decide what each classification may see and touch.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, authz.Policy{LegacyWritable: cfg.LegacyTasksWritable})
	healthHandler := handlers.NewHealthHandler(db, version)

	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/me", middleware.BearerToken(), h.Me)

	todos := api.Group("/todos")
	todos.Use(middleware.BearerToken())
	todos.GET("", h.ListTasks)
	todos.POST("", h.CreateTask)
	todos.PUT("/:id", h.UpdateTask)
	todos.DELETE("/:id", h.DeleteTask)
}
