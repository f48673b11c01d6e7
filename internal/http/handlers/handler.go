package handlers

import (
	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/repository"
	"github.com/ShelcyG/todo-app/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB     *pgxpool.Pool
	Auth   *service.AuthService
	Users  *repository.UserRepository
	Tasks  *repository.TaskRepository
	Policy authz.Policy
}

func NewHandler(db *pgxpool.Pool, policy authz.Policy) *Handler {
	users := repository.NewUserRepository(db)
	return &Handler{
		DB:     db,
		Auth:   service.NewAuthService(users),
		Users:  users,
		Tasks:  repository.NewTaskRepository(db),
		Policy: policy,
	}
}
