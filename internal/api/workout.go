package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// WorkoutHandler handles program and workout listing.
type WorkoutHandler struct {
	workouts *service.WorkoutPlanService
}

func NewWorkoutHandler(workouts *service.WorkoutPlanService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// RegisterRoutes registers the workout listing routes.
func (h *WorkoutHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/programas", h.ListUserPrograms)
	router.GET("/treinos-programa", h.ListProgramWorkouts)
	router.GET("/exercicios-treinos", h.ListWorkoutExercises)
}

// ListUserPrograms returns a user's training programs, newest first.
func (h *WorkoutHandler) ListUserPrograms(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro userId inválido"})
		return
	}

	rows, err := h.workouts.ListUserPrograms(uint(userID))
	if err != nil {
		log.Printf("listar programas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar programas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"programas": rows})
}

// ListProgramWorkouts returns the workouts of a program.
func (h *WorkoutHandler) ListProgramWorkouts(c *gin.Context) {
	programID, err := strconv.ParseUint(c.Query("id_programa"), 10, 64)
	if err != nil || programID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro id_programa inválido"})
		return
	}

	rows, err := h.workouts.ListProgramWorkouts(uint(programID))
	if err != nil {
		log.Printf("listar treinos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar treinos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"treinos": rows})
}

// ListWorkoutExercises returns the exercises of a workout.
func (h *WorkoutHandler) ListWorkoutExercises(c *gin.Context) {
	workoutID, err := strconv.ParseUint(c.Query("id_treino"), 10, 64)
	if err != nil || workoutID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro id_treino inválido"})
		return
	}

	rows, err := h.workouts.ListWorkoutExercises(uint(workoutID))
	if err != nil {
		log.Printf("listar exercícios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar exercícios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercicios": rows})
}
