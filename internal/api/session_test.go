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
	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/config"
	"github.com/apureza/fitcoach-v2/backend/internal/middleware"
	"github.com/apureza/fitcoach-v2/backend/internal/models"
	"github.com/apureza/fitcoach-v2/backend/internal/service"
	"github.com/apureza/fitcoach-v2/backend/internal/testhelpers"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, &config.Config{SecretKey: "test-secret", Algorithm: "HS256"})

	token, err := auth.Register("Maria", "maria@example.com", "maria", "senha123")
	require.NoError(t, err)

	router := gin.New()
	authenticated := router.Group("/")
	authenticated.Use(middleware.AuthMiddleware(auth))
	NewSessionHandler(service.NewSessionService(db)).RegisterRoutes(authenticated)
	return router, db, token
}

func authedRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedSessionWorkout(t *testing.T, db *gorm.DB, userID uint) (uint, uint) {
	t.Helper()

	workout := models.Workout{Name: "Treino A", Description: "d", UserID: userID, Duration: 60, Difficulty: "intermediario"}
	require.NoError(t, db.Create(&workout).Error)

	exercise := models.WorkoutExercise{
		Name: "Supino Reto", Equipment: "Barra", MuscleGroup: "Peito",
		WorkoutID: workout.ID, Sets: 3, Reps: 10, RestSeconds: 90,
	}
	require.NoError(t, db.Create(&exercise).Error)
	return workout.ID, exercise.ID
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		router, _, _ := setupSessionRouter(t)

		w := authedRequest(t, router, http.MethodPost, "/sessoes", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = authedRequest(t, router, http.MethodGet, "/sessoes/perfil?id_usuario=1", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("records a session", func(t *testing.T) {
		router, db, token := setupSessionRouter(t)
		workoutID, exerciseID := seedSessionWorkout(t, db, 1)

		w := authedRequest(t, router, http.MethodPost, "/sessoes", token, gin.H{
			"duracao":   55,
			"id_treino": workoutID,
			"descricao": "treino pesado",
			"exercicios": []gin.H{
				{"id_exercicio": exerciseID, "repeticoes": []int{10, 8}, "cargas": []float64{60, 65}},
			},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "id_sessao")

		var sets int64
		require.NoError(t, db.Table("series").Count(&sets).Error)
		assert.EqualValues(t, 2, sets)
	})

	t.Run("mismatched reps and loads", func(t *testing.T) {
		router, db, token := setupSessionRouter(t)
		workoutID, exerciseID := seedSessionWorkout(t, db, 1)

		w := authedRequest(t, router, http.MethodPost, "/sessoes", token, gin.H{
			"duracao":   30,
			"id_treino": workoutID,
			"exercicios": []gin.H{
				{"id_exercicio": exerciseID, "repeticoes": []int{10, 8}, "cargas": []float64{60}},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cargas")
	})

	t.Run("lists history and details", func(t *testing.T) {
		router, db, token := setupSessionRouter(t)
		workoutID, exerciseID := seedSessionWorkout(t, db, 1)

		w := authedRequest(t, router, http.MethodPost, "/sessoes", token, gin.H{
			"duracao":   55,
			"id_treino": workoutID,
			"exercicios": []gin.H{
				{"id_exercicio": exerciseID, "repeticoes": []int{10}, "cargas": []float64{60}},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = authedRequest(t, router, http.MethodGet, "/sessoes/perfil?id_usuario=1", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Treino A")

		w = authedRequest(t, router, http.MethodGet, "/sessoes/exercicios?id_sessao=1", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Supino Reto")
	})
}
