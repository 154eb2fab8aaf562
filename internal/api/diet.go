package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// DietHandler handles diet plan generation, confirmation and listing.
type DietHandler struct {
	diets *service.DietService
	llm   service.PlanGenerator
}

func NewDietHandler(diets *service.DietService, llm service.PlanGenerator) *DietHandler {
	return &DietHandler{diets: diets, llm: llm}
}

// RegisterGenerationRoutes registers the diet generation routes.
func (h *DietHandler) RegisterGenerationRoutes(router gin.IRoutes) {
	router.POST("/gpt/dieta", h.Generate)
	router.POST("/gpt/dieta/ajustar", h.Adjust)
	router.POST("/gpt/dieta/confirm", h.Confirm)
}

// RegisterQueryRoutes registers the diet listing routes.
func (h *DietHandler) RegisterQueryRoutes(router gin.IRoutes) {
	router.GET("/dietas_usuario", h.ListUserDiets)
	router.GET("/refeicoes_dieta", h.ListDietMeals)
}

// DietAdjustmentRequest asks the model to rework a previously generated
// diet.
type DietAdjustmentRequest struct {
	Anamnesis   service.DietAnamnesis `json:"anamnese" binding:"required"`
	CurrentPlan map[string]any        `json:"planoAtual" binding:"required"`
	Adjustments string                `json:"ajustes"`
}

// ConfirmDietRequest carries the diet plan the user accepted.
type ConfirmDietRequest struct {
	Plan *service.DietPlanPayload `json:"plano" binding:"required"`
}

// Generate builds a diet prompt from the anamnesis answers and returns the
// model's plan without persisting anything.
func (h *DietHandler) Generate(c *gin.Context) {
	var anamnesis service.DietAnamnesis
	if err := c.ShouldBindJSON(&anamnesis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados da anamnese inválidos"})
		return
	}

	prompt := service.BuildDietPrompt(&anamnesis)
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

// Adjust reworks a diet the user was not satisfied with.
func (h *DietHandler) Adjust(c *gin.Context) {
	var req DietAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de ajuste inválidos"})
		return
	}

	prompt, err := service.BuildDietAdjustmentPrompt(&req.Anamnesis, req.CurrentPlan, req.Adjustments)
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
		"message": "Plano de dieta ajustado com sucesso",
		"plano":   plan,
	})
}

// Confirm validates the accepted diet plan and persists it.
func (h *DietHandler) Confirm(c *gin.Context) {
	var req ConfirmDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plano ausente ou malformado"})
		return
	}

	result, err := h.diets.Persist(req.Plan)
	if err != nil {
		var validation *service.PlanValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		log.Printf("confirmar plano de dieta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o plano de dieta"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Plano gerado e salvo com sucesso",
		"dieta":        result.Diet,
		"refeicoesIds": result.MealIDs,
		"plano":        result.Plan,
	})
}

// ListUserDiets returns a user's diets with their total calories.
func (h *DietHandler) ListUserDiets(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("idUsuario"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro idUsuario inválido"})
		return
	}

	rows, err := h.diets.ListUserDiets(uint(userID))
	if err != nil {
		log.Printf("listar dietas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar dietas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dietas": rows})
}

// ListDietMeals returns the meals of a diet.
func (h *DietHandler) ListDietMeals(c *gin.Context) {
	dietID, err := strconv.ParseUint(c.Query("idDieta"), 10, 64)
	if err != nil || dietID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro idDieta inválido"})
		return
	}

	rows, err := h.diets.ListDietMeals(uint(dietID))
	if err != nil {
		log.Printf("listar refeições: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar refeições"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"refeicoes": rows})
}
