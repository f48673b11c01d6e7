package handlers

import (
	"errors"
	"net/http"

	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/http/middleware"
	"github.com/ShelcyG/todo-app/internal/logger"
	"github.com/ShelcyG/todo-app/internal/repository"

	"github.com/gin-gonic/gin"
)

// Me is the only route that demands a verified token. Unlike the task
// routes, a missing or failed token is rejected here instead of being
// treated as an anonymous caller.
func (h *Handler) Me(c *gin.Context) {
	access := middleware.Access(c)
	if access.State != authz.ValidToken {
		c.JSON(http.StatusForbidden, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), access.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("load current user failed", "err", err, "user_id", access.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
