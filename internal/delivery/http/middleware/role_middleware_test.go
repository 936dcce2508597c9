package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sante-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed role passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RequireRole(entity.RoleDoctor)(okHandler).ServeHTTP(rr, requestWithRole(entity.RoleDoctor))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("disallowed role is forbidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RequireRole(entity.RoleAdmin)(okHandler).ServeHTTP(rr, requestWithRole(entity.RolePatient))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
		RequireRole(entity.RoleAdmin)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireStaff(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleReceptionist} {
		rr := httptest.NewRecorder()
		RequireStaff()(okHandler).ServeHTTP(rr, requestWithRole(role))
		assert.Equal(t, http.StatusOK, rr.Code, "role %s should be staff", role)
	}

	rr := httptest.NewRecorder()
	RequireStaff()(okHandler).ServeHTTP(rr, requestWithRole(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestClientIP(t *testing.T) {
	t.Run("prefers forwarded header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.10, 10.0.0.1")

		assert.Equal(t, "203.0.113.10", clientIP(req))
	})

	t.Run("falls back to remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:51234"

		assert.Equal(t, "192.0.2.7", clientIP(req))
	})
}
