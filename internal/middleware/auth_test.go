package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookmydoc-api/internal/middleware"
	"bookmydoc-api/internal/models"
	"bookmydoc-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), middleware.RequireRoles(roles...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	r := newTestRouter(models.RolePatient)

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(r, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(1, "patient")
		require.NoError(t, err)
		rec := doRequest(r, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)

	t.Run("role not in permitted set", func(t *testing.T) {
		r := newTestRouter(models.RoleDoctor)
		token, err := utils.GenerateAccessToken(1, "patient")
		require.NoError(t, err)
		rec := doRequest(r, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unrecognized role denied", func(t *testing.T) {
		r := newTestRouter(models.RolePatient, models.RoleDoctor)
		token, err := utils.GenerateAccessToken(1, "admin")
		require.NoError(t, err)
		rec := doRequest(r, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("any permitted role passes", func(t *testing.T) {
		r := newTestRouter(models.RolePatient, models.RoleDoctor)
		for _, role := range []string{"patient", "doctor"} {
			token, err := utils.GenerateAccessToken(1, role)
			require.NoError(t, err)
			rec := doRequest(r, token)
			assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
		}
	})
}
