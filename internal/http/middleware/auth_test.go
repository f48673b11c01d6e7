package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/service"

	"github.com/gin-gonic/gin"
)

func classify(t *testing.T, header string) authz.Access {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got authz.Access
	r := gin.New()
	r.GET("/probe", BearerToken(), func(c *gin.Context) {
		got = Access(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("middleware aborted with status %d", w.Code)
	}
	return got
}

func TestBearerTokenClassification(t *testing.T) {
	service.InitJWT("test-secret")
	valid, err := service.GenerateJWT(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   authz.TokenState
		userID int64
	}{
		{"no header", "", authz.NoToken, 0},
		{"bare scheme", "Bearer", authz.NoToken, 0},
		{"empty token", "Bearer ", authz.NoToken, 0},
		{"wrong scheme", "Basic abc123", authz.NoToken, 0},
		{"valid token", "Bearer " + valid, authz.ValidToken, 7},
		{"lowercase scheme", "bearer " + valid, authz.ValidToken, 7},
		{"garbage token", "Bearer not-a-jwt", authz.InvalidToken, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(t, tt.header)
			if got.State != tt.want {
				t.Fatalf("state = %v; want %v", got.State, tt.want)
			}
			if got.UserID != tt.userID {
				t.Fatalf("user id = %d; want %d", got.UserID, tt.userID)
			}
		})
	}
}

func TestBearerTokenWrongSignatureIsInvalid(t *testing.T) {
	service.InitJWT("other-secret")
	foreign, err := service.GenerateJWT(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	service.InitJWT("test-secret")

	got := classify(t, "Bearer "+foreign)
	if got.State != authz.InvalidToken {
		t.Fatalf("state = %v; want InvalidToken", got.State)
	}
}

func TestAccessWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := Access(c); got.State != authz.NoToken {
		t.Fatalf("state = %v; want NoToken", got.State)
	}
}
