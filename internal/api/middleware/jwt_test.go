package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

func newTestRouter(t *testing.T) (*gin.Engine, *JWTMiddleware) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	m := NewJWTMiddleware("test-secret", logger)

	router := gin.New()
	router.GET("/admin/ping", m.Auth(), m.RequireRole(storages.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/user/ping", m.Auth(), m.RequireRole(storages.RoleUser), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, m
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	// Без токена защищенные маршруты недоступны
	if w := doRequest(router, "/admin/ping", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
	if w := doRequest(router, "/user/ping", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}

func TestInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := doRequest(router, "/admin/ping", "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for invalid token, got %d", w.Code)
	}
}

func TestRoleGuard(t *testing.T) {
	router, m := newTestRouter(t)

	userToken, err := m.GenerateToken("1", "John Doe", storages.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	adminToken, err := m.GenerateToken("admin-1", "Admin User", storages.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// Пользователь не попадает в консоль администратора
	if w := doRequest(router, "/admin/ping", userToken); w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for USER on admin route, got %d", w.Code)
	}

	// Администратор не попадает в кабинет пользователя
	if w := doRequest(router, "/user/ping", adminToken); w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for ADMIN on user route, got %d", w.Code)
	}

	// Совпадающая роль проходит
	if w := doRequest(router, "/admin/ping", adminToken); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for ADMIN on admin route, got %d", w.Code)
	}
	if w := doRequest(router, "/user/ping", userToken); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for USER on user route, got %d", w.Code)
	}
}

func TestUnknownRoleRejected(t *testing.T) {
	router, m := newTestRouter(t)

	// Роль вне закрытого перечисления отклоняется явно
	token, err := m.GenerateToken("x", "Ghost", storages.UserRole("SUPERVISOR"), time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if w := doRequest(router, "/admin/ping", token); w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for unknown role, got %d", w.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	router, m := newTestRouter(t)

	token, err := m.GenerateToken("1", "John Doe", storages.RoleUser, -time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if w := doRequest(router, "/user/ping", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for expired token, got %d", w.Code)
	}
}
