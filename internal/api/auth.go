package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/cadastro", h.Register)
	router.POST("/login", h.Login)
}

// Register creates an account and returns a token for the new user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de cadastro inválidos"})
		return
	}

	token, err := h.auth.Register(req.Name, req.Email, req.Username, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário ou e-mail já cadastrado!"})
		return
	}
	if err != nil {
		log.Printf("cadastro: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao cadastrar usuário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"auth_token": token})
}

// Login authenticates an email and password and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de login inválidos"})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado!"})
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário ou senha inválidos!"})
		return
	}
	if err != nil {
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao realizar login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
