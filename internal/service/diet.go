package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
)

// DietService validates generated diet plans and persists them across the
// diet and meal tables.
type DietService struct {
	db *gorm.DB
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db}
}

// DietSummary identifies a persisted diet in confirm responses.
type DietSummary struct {
	ID          uint   `json:"id_dieta"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// DietPlanResult is the outcome of a confirmed diet plan.
type DietPlanResult struct {
	Diet    DietSummary      `json:"dieta"`
	MealIDs []uint           `json:"refeicoesIds"`
	Plan    *DietPlanPayload `json:"plano"`
}

// ValidateDietPlan checks the shape of a generated diet plan and returns the
// owning user id.
func ValidateDietPlan(plan *DietPlanPayload) (int, error) {
	if plan == nil {
		return 0, invalidField("plano", "estrutura do plano inválida")
	}
	if plan.Name == "" {
		return 0, invalidField("nome", "dados obrigatórios da dieta ausentes")
	}
	if plan.Description == "" {
		return 0, invalidField("descricao", "dados obrigatórios da dieta ausentes")
	}
	owner := plan.UserID.Int()
	if owner < 1 {
		return 0, invalidField("usuario", "deve ser um inteiro positivo")
	}
	if len(plan.Meals) == 0 {
		return 0, invalidField("refeicoes", "a dieta deve conter ao menos uma refeição")
	}
	for _, m := range plan.Meals {
		if m.MealType == "" {
			return 0, invalidField("tipoRefeicao", "dados obrigatórios da refeição ausentes")
		}
		if m.Foods == "" {
			return 0, invalidField("alimentos", "dados obrigatórios da refeição ausentes")
		}
		if m.Calories.Int() < 0 {
			return 0, invalidField("calorias", "não pode ser negativo")
		}
	}
	return owner, nil
}

// Persist validates the plan and writes the diet and its meals in a single
// transaction. The diet id comes from the insert itself, so concurrent
// confirmations never attach meals to the wrong diet.
func (s *DietService) Persist(plan *DietPlanPayload) (*DietPlanResult, error) {
	owner, err := ValidateDietPlan(plan)
	if err != nil {
		return nil, err
	}

	var result *DietPlanResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		diet := models.Diet{
			Name:        plan.Name,
			Description: plan.Description,
			UserID:      uint(owner),
		}
		if err := tx.Create(&diet).Error; err != nil {
			return fmt.Errorf("falha ao inserir dieta: %w", err)
		}

		mealIDs := make([]uint, 0, len(plan.Meals))
		for _, m := range plan.Meals {
			meal := models.Meal{
				Calories: m.Calories.Int(),
				Foods:    m.Foods,
				MealType: m.MealType,
				DietID:   diet.ID,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return fmt.Errorf("falha ao inserir refeição: %w", err)
			}
			mealIDs = append(mealIDs, meal.ID)
		}

		result = &DietPlanResult{
			Diet: DietSummary{
				ID:          diet.ID,
				Name:        diet.Name,
				Description: diet.Description,
			},
			MealIDs: mealIDs,
			Plan:    plan,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DietRow is a diet as listed for a user, with the summed calories of its
// meals. Calories is nil for diets with no meals.
type DietRow struct {
	ID          uint   `gorm:"column:id_dieta" json:"id_dieta"`
	Name        string `gorm:"column:nome" json:"nome"`
	Description string `gorm:"column:descricao" json:"descricao"`
	Calories    *int   `gorm:"column:calorias" json:"calorias"`
}

// ListUserDiets returns a user's diets with their total calories.
func (s *DietService) ListUserDiets(userID uint) ([]DietRow, error) {
	var rows []DietRow
	err := s.db.Model(&models.Diet{}).
		Select("dieta.id_dieta, dieta.nome, dieta.descricao, SUM(refeicoes.calorias) AS calorias").
		Joins("LEFT JOIN refeicoes ON refeicoes.id_dieta = dieta.id_dieta").
		Where("dieta.id_usuario = ?", userID).
		Group("dieta.id_dieta, dieta.nome, dieta.descricao").
		Order("dieta.id_dieta").
		Scan(&rows).Error
	return rows, err
}

// MealRow is a meal as listed inside a diet.
type MealRow struct {
	ID       uint   `gorm:"column:id_refeicao" json:"id_refeicao"`
	Calories int    `gorm:"column:calorias" json:"calorias"`
	Foods    string `gorm:"column:alimentos" json:"alimentos"`
	MealType string `gorm:"column:tipo_refeicao" json:"tipo_refeicao"`
}

// ListDietMeals returns the meals of a diet.
func (s *DietService) ListDietMeals(dietID uint) ([]MealRow, error) {
	var rows []MealRow
	err := s.db.Model(&models.Meal{}).
		Select("id_refeicao, calorias, alimentos, tipo_refeicao").
		Where("id_dieta = ?", dietID).
		Order("id_refeicao").
		Scan(&rows).Error
	return rows, err
}
