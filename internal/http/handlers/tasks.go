package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ShelcyG/todo-app/internal/domain"
	"github.com/ShelcyG/todo-app/internal/http/middleware"
	"github.com/ShelcyG/todo-app/internal/logger"
	"github.com/ShelcyG/todo-app/internal/repository"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// updateTaskRequest distinguishes absent fields from zero values, so a
// client can flip completed without resending the title.
type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// ListTasks returns every task an anonymous caller may see, or only the
// caller's own tasks when a verified token is presented. A token that fails
// verification widens the view back to everything rather than erroring.
func (h *Handler) ListTasks(c *gin.Context) {
	access := middleware.Access(c)
	owner := h.Policy.ReadFilter(access)

	tasks, err := h.Tasks.List(c.Request.Context(), owner)
	if err != nil {
		logger.Error("list tasks failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	access := middleware.Access(c)
	task := &domain.Task{
		Title:     title,
		Completed: req.Completed,
		OwnerID:   h.Policy.CreateOwner(access),
	}
	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		logger.Error("create task failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := repository.TaskPatch{Completed: req.Completed}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}
		patch.Title = &title
	}

	access := middleware.Access(c)
	scope := h.Policy.WriteScope(access)

	task, err := h.Tasks.Update(c.Request.Context(), id, patch, scope)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Also the answer for a task owned by someone else.
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("update task failed", "err", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	access := middleware.Access(c)
	scope := h.Policy.WriteScope(access)

	if err := h.Tasks.Delete(c.Request.Context(), id, scope); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("delete task failed", "err", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
