package middleware

import (
	"strings"

	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/service"

	"github.com/gin-gonic/gin"
)

const accessKey = "authz.access"

// BearerToken classifies the request's credentials and stores the result in
// the context. It never aborts: a missing header means an anonymous caller,
// and a header that fails to verify is recorded as invalid so each handler
// can decide what that means for its route. Anything other than a
// well-formed "Bearer <token>" pair counts as no credentials at all.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.Set(accessKey, authz.Anonymous())
			c.Next()
			return
		}

		userID, err := service.ParseJWT(parts[1])
		if err != nil {
			c.Set(accessKey, authz.Invalid())
			c.Next()
			return
		}

		c.Set(accessKey, authz.User(userID))
		c.Next()
	}
}

// Access returns the classification stored by BearerToken. Routes that run
// without the middleware read as anonymous.
func Access(c *gin.Context) authz.Access {
	if v, ok := c.Get(accessKey); ok {
		if a, ok := v.(authz.Access); ok {
			return a
		}
	}
	return authz.Anonymous()
}
