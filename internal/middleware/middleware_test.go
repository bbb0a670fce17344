package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darshan-Yash/Periodic-table/config"
	"github.com/Darshan-Yash/Periodic-table/internal/domain/user"
	"github.com/Darshan-Yash/Periodic-table/internal/services"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"
	"github.com/Darshan-Yash/Periodic-table/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopUserRepo struct{}

func (noopUserRepo) Create(context.Context, string, string) (int64, error) {
	return 0, ptable_errors.ErrNotFound
}

func (noopUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, ptable_errors.ErrNotFound
}

func newAuthService(expiryHours int) *services.AuthService {
	return services.NewAuthService(noopUserRepo{}, &config.Config{
		SessionSecret:    "test-secret",
		TokenExpiryHours: expiryHours,
	})
}

func TestAuthMiddlewarePassesSubject(t *testing.T) {
	svc := newAuthService(24)
	token, err := svc.IssueToken("alice@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		subject, ok := services.SubjectFromContext(c.Request.Context())
		require.True(t, ok)
		c.String(http.StatusOK, subject)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", w.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	svc := newAuthService(24)
	expiredSvc := newAuthService(-1)
	expiredToken, err := expiredSvc.IssueToken("alice@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer garbage"},
		{name: "expired token", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		requestID, _ := c.Request.Context().Value(logger.RequestIdKey).(string)
		c.String(http.StatusOK, requestID)
	})

	t.Run("generates one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		assert.Equal(t, w.Header().Get("X-Request-Id"), w.Body.String())
	})

	t.Run("honors incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
		assert.Equal(t, "req-123", w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("sets headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "Bearer  abc ", want: "abc"},
		{header: "Basic abc", want: ""},
		{header: "Bearer", want: ""},
		{header: "", want: ""},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			c.Request.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, extractBearer(c), tt.header)
	}
}
