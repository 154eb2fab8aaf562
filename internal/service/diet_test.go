package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
	"github.com/apureza/fitcoach-v2/backend/internal/testhelpers"
)

func validDietPlan(userID int) *DietPlanPayload {
	return &DietPlanPayload{
		Name:        "Dieta Cutting",
		Description: "Plano de 1800 kcal para emagrecimento",
		UserID:      FlexInt(userID),
		Meals: []MealPayload{
			{Calories: 450, Foods: "Ovos Mexidos - 3 unidades - Na Frigideira; Pão Integral - 2 fatias - Tostado", MealType: "Café da manhã"},
			{Calories: 650, Foods: "Peito De Frango Grelhado - 150 g - Grelhado; Arroz Integral - 120 g - Cozido", MealType: "Almoço"},
			{Calories: 700, Foods: "Tilápia Assada - 180 g - Assada; Batata Doce - 150 g - Cozida", MealType: "Jantar"},
		},
	}
}

func TestValidateDietPlan(t *testing.T) {
	t.Run("valid plan returns owner", func(t *testing.T) {
		owner, err := ValidateDietPlan(validDietPlan(12))
		require.NoError(t, err)
		assert.Equal(t, 12, owner)
	})

	cases := []struct {
		name   string
		mutate func(p *DietPlanPayload)
		field  string
	}{
		{"name missing", func(p *DietPlanPayload) { p.Name = "" }, "nome"},
		{"description missing", func(p *DietPlanPayload) { p.Description = "" }, "descricao"},
		{"zero owner", func(p *DietPlanPayload) { p.UserID = 0 }, "usuario"},
		{"no meals", func(p *DietPlanPayload) { p.Meals = nil }, "refeicoes"},
		{"meal type missing", func(p *DietPlanPayload) { p.Meals[1].MealType = "" }, "tipoRefeicao"},
		{"foods missing", func(p *DietPlanPayload) { p.Meals[2].Foods = "" }, "alimentos"},
		{"negative calories", func(p *DietPlanPayload) { p.Meals[0].Calories = -10 }, "calorias"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := validDietPlan(12)
			tc.mutate(plan)

			_, err := ValidateDietPlan(plan)
			var validation *PlanValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestDietServicePersist(t *testing.T) {
	t.Run("persists diet and meals", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		svc := NewDietService(db)

		result, err := svc.Persist(validDietPlan(12))
		require.NoError(t, err)

		assert.NotZero(t, result.Diet.ID)
		assert.Equal(t, "Dieta Cutting", result.Diet.Name)
		require.Len(t, result.MealIDs, 3)

		var meals []models.Meal
		require.NoError(t, db.Order("id_refeicao").Find(&meals).Error)
		require.Len(t, meals, 3)
		assert.Equal(t, 450, meals[0].Calories)
		assert.Equal(t, result.Diet.ID, meals[0].DietID)
	})

	t.Run("sequential confirmations keep meals attached to their diet", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		svc := NewDietService(db)

		first, err := svc.Persist(validDietPlan(12))
		require.NoError(t, err)
		second, err := svc.Persist(validDietPlan(12))
		require.NoError(t, err)
		assert.NotEqual(t, first.Diet.ID, second.Diet.ID)

		var count int64
		require.NoError(t, db.Model(&models.Meal{}).Where("id_dieta = ?", second.Diet.ID).Count(&count).Error)
		assert.EqualValues(t, 3, count)
	})

	t.Run("invalid plan writes nothing", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		svc := NewDietService(db)

		plan := validDietPlan(12)
		plan.Meals[0].Foods = ""

		_, err := svc.Persist(plan)
		var validation *PlanValidationError
		require.ErrorAs(t, err, &validation)

		var diets int64
		require.NoError(t, db.Model(&models.Diet{}).Count(&diets).Error)
		assert.Zero(t, diets)
	})
}

func TestDietServiceListing(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewDietService(db)

	result, err := svc.Persist(validDietPlan(12))
	require.NoError(t, err)

	t.Run("lists diets with summed calories", func(t *testing.T) {
		rows, err := svc.ListUserDiets(12)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, result.Diet.ID, rows[0].ID)
		require.NotNil(t, rows[0].Calories)
		assert.Equal(t, 1800, *rows[0].Calories)
	})

	t.Run("diet without meals sums to null", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Diet{Name: "Vazia", Description: "d", UserID: 12}).Error)

		rows, err := svc.ListUserDiets(12)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[1].Calories)
	})

	t.Run("lists meals of a diet", func(t *testing.T) {
		rows, err := svc.ListDietMeals(result.Diet.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Café da manhã", rows[0].MealType)
		assert.Equal(t, 650, rows[1].Calories)
	})
}
