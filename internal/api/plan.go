package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// PlanHandler handles workout plan generation, adjustment and confirmation.
type PlanHandler struct {
	workouts *service.WorkoutPlanService
	llm      service.PlanGenerator
}

func NewPlanHandler(workouts *service.WorkoutPlanService, llm service.PlanGenerator) *PlanHandler {
	return &PlanHandler{workouts: workouts, llm: llm}
}

// RegisterRoutes registers the workout generation routes.
func (h *PlanHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/gpt", h.Generate)
	router.POST("/gpt/ajustar", h.Adjust)
	router.POST("/gpt/confirm", h.Confirm)
}

// WorkoutAdjustmentRequest asks the model to rework a previously generated
// plan.
type WorkoutAdjustmentRequest struct {
	Anamnesis   service.WorkoutAnamnesis `json:"anamnese" binding:"required"`
	CurrentPlan map[string]any           `json:"planoAtual" binding:"required"`
	Adjustments string                   `json:"ajustes"`
}

// ConfirmWorkoutRequest carries the plan the user accepted.
type ConfirmWorkoutRequest struct {
	Plan *service.WorkoutPlanPayload `json:"plano" binding:"required"`
}

// Generate builds a prompt from the anamnesis answers and returns the
// model's plan without persisting anything.
func (h *PlanHandler) Generate(c *gin.Context) {
	var anamnesis service.WorkoutAnamnesis
	if err := c.ShouldBindJSON(&anamnesis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados da anamnese inválidos"})
		return
	}

	prompt := service.BuildWorkoutPrompt(&anamnesis)
	plan, err := h.llm.GeneratePlan(prompt)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plano gerado com sucesso",
		"plano":   plan,
	})
}

// Adjust reworks a plan the user was not satisfied with.
func (h *PlanHandler) Adjust(c *gin.Context) {
	var req WorkoutAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de ajuste inválidos"})
		return
	}

	prompt, err := service.BuildWorkoutAdjustmentPrompt(&req.Anamnesis, req.CurrentPlan, req.Adjustments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plano atual inválido"})
		return
	}

	plan, err := h.llm.GeneratePlan(prompt)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plano ajustado com sucesso",
		"plano":   plan,
	})
}

// Confirm validates the accepted plan and persists it.
func (h *PlanHandler) Confirm(c *gin.Context) {
	var req ConfirmWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plano ausente ou malformado"})
		return
	}

	result, err := h.workouts.Persist(req.Plan)
	if err != nil {
		var validation *service.PlanValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		log.Printf("confirmar plano de treino: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o plano de treino"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Plano gerado e salvo com sucesso",
		"programa":   result.Program,
		"treinosIds": result.WorkoutIDs,
		"plano":      result.Plan,
	})
}

// writeGenerationError maps model call failures to HTTP responses. Model
// output that cannot be decoded is the upstream's fault, not the client's.
func writeGenerationError(c *gin.Context, err error) {
	var decode *service.ModelDecodeError
	if errors.As(err, &decode) {
		c.JSON(http.StatusBadGateway, gin.H{"error": decode.Error()})
		return
	}
	if errors.Is(err, service.ErrModelKeyMissing) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrModelKeyMissing.Error()})
		return
	}
	log.Printf("geração de plano: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar o plano"})
}
