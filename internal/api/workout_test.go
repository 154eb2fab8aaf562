package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apureza/fitcoach-v2/backend/internal/service"
	"github.com/apureza/fitcoach-v2/backend/internal/testhelpers"
)

func TestWorkoutListingEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	workouts := service.NewWorkoutPlanService(db)

	router := gin.New()
	NewPlanHandler(workouts, &stubGenerator{}).RegisterRoutes(router)
	NewWorkoutHandler(workouts).RegisterRoutes(router)

	require.Equal(t, http.StatusOK, postJSON(t, router, "/gpt/confirm", confirmableWorkoutPlan(7)).Code)

	t.Run("lists programs per user", func(t *testing.T) {
		w := getPath(t, router, "/programas?userId=7")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Base")
	})

	t.Run("lists workouts of a program", func(t *testing.T) {
		w := getPath(t, router, "/treinos-programa?user_id=7&id_programa=1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Treino 01")
	})

	t.Run("lists exercises of a workout", func(t *testing.T) {
		w := getPath(t, router, "/exercicios-treinos?user_id=7&id_treino=1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Supino Reto")
	})

	t.Run("rejects bad query params", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/programas").Code)
		assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/treinos-programa?id_programa=0").Code)
		assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/exercicios-treinos?id_treino=x").Code)
	})
}
