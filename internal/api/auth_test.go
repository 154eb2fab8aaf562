package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apureza/fitcoach-v2/backend/config"
	"github.com/apureza/fitcoach-v2/backend/internal/service"
	"github.com/apureza/fitcoach-v2/backend/internal/testhelpers"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, &config.Config{SecretKey: "test-secret", Algorithm: "HS256"})

	router := gin.New()
	NewAuthHandler(auth).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates account and returns token", func(t *testing.T) {
		router := setupAuthRouter(t)

		w := postJSON(t, router, "/cadastro", RegisterRequest{
			Username: "maria", Name: "Maria", Password: "senha123", Email: "maria@example.com",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["auth_token"])
	})

	t.Run("duplicate account", func(t *testing.T) {
		router := setupAuthRouter(t)
		req := RegisterRequest{Username: "maria", Name: "Maria", Password: "senha123", Email: "maria@example.com"}

		require.Equal(t, http.StatusCreated, postJSON(t, router, "/cadastro", req).Code)

		w := postJSON(t, router, "/cadastro", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "já cadastrado")
	})

	t.Run("missing fields", func(t *testing.T) {
		router := setupAuthRouter(t)
		w := postJSON(t, router, "/cadastro", gin.H{"username": "maria"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	register := func(t *testing.T, router *gin.Engine) {
		w := postJSON(t, router, "/cadastro", RegisterRequest{
			Username: "maria", Name: "Maria", Password: "senha123", Email: "maria@example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("valid credentials", func(t *testing.T) {
		router := setupAuthRouter(t)
		register(t, router)

		w := postJSON(t, router, "/login", LoginRequest{Email: "maria@example.com", Password: "senha123"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("unknown email", func(t *testing.T) {
		router := setupAuthRouter(t)

		w := postJSON(t, router, "/login", LoginRequest{Email: "nope@example.com", Password: "senha123"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "não encontrado")
	})

	t.Run("wrong password", func(t *testing.T) {
		router := setupAuthRouter(t)
		register(t, router)

		w := postJSON(t, router, "/login", LoginRequest{Email: "maria@example.com", Password: "errada"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "senha inválidos")
	})
}
