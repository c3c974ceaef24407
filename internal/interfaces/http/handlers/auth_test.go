package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

func authTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-at-least-32-characters!!",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		Admin: config.AdminConfig{
			Email:    "admin@store.com",
			Password: "admin-password",
		},
	}
}

func newLoginRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler, err := NewAuthHandler(cfg)
	require.NoError(t, err)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	cfg := authTestConfig()
	router := newLoginRouter(t, cfg)

	w := postLogin(router, `{"email":"admin@store.com","password":"admin-password"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := auth.NewJWTManager(cfg).ValidateAccessToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@store.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	router := newLoginRouter(t, authTestConfig())

	w := postLogin(router, `{"email":"Admin@Store.com","password":"admin-password"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newLoginRouter(t, authTestConfig())

	w := postLogin(router, `{"email":"admin@store.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	router := newLoginRouter(t, authTestConfig())

	w := postLogin(router, `{"email":"someone@else.com","password":"admin-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidatesRequestShape(t *testing.T) {
	router := newLoginRouter(t, authTestConfig())

	w := postLogin(router, `{"email":"not-an-email","password":"admin-password"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postLogin(router, `{"email":"admin@store.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
