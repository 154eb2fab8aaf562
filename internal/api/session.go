package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// SessionHandler handles workout session logging and history.
type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers the session routes. All of them require an
// authenticated caller.
func (h *SessionHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/sessoes", h.Create)
	router.GET("/sessoes/perfil", h.ListUserSessions)
	router.GET("/sessoes/exercicios", h.SessionExercises)
}

// Create records an executed workout session with its sets.
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.SessionInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados da sessão inválidos"})
		return
	}

	sessionID, sets, err := h.sessions.Create(&req)
	if err != nil {
		var validation *service.PlanValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		log.Printf("registrar sessão: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar sessão"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id_sessao": sessionID,
		"series":    sets,
	})
}

// ListUserSessions returns the session history of a user.
func (h *SessionHandler) ListUserSessions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("id_usuario"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro id_usuario inválido"})
		return
	}

	rows, err := h.sessions.ListUserSessions(uint(userID))
	if err != nil {
		log.Printf("listar sessões: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar sessões"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessoes": rows})
}

// SessionExercises returns the sets of a session grouped by exercise.
func (h *SessionHandler) SessionExercises(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Query("id_sessao"), 10, 64)
	if err != nil || sessionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro id_sessao inválido"})
		return
	}

	rows, err := h.sessions.SessionExercises(uint(sessionID))
	if err != nil {
		log.Printf("detalhar sessão: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao detalhar sessão"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercicios": rows})
}
