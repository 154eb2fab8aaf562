package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
	"github.com/apureza/fitcoach-v2/backend/internal/testhelpers"
)

// seedWorkout inserts a user, a workout and two exercises, returning the
// workout and the exercise ids.
func seedWorkout(t *testing.T, svc *SessionService, userID uint) (uint, []uint) {
	t.Helper()
	db := svc.db

	require.NoError(t, db.Create(&models.User{
		ID: userID, Name: "Maria", Email: "maria@example.com",
		Username: "maria", PasswordHash: "x",
	}).Error)

	workout := models.Workout{Name: "Treino A", Description: "d", UserID: userID, Duration: 60, Difficulty: "intermediario"}
	require.NoError(t, db.Create(&workout).Error)

	var exerciseIDs []uint
	for _, name := range []string{"Supino Reto", "Crucifixo"} {
		ex := models.WorkoutExercise{
			Name: name, Equipment: "Halteres", MuscleGroup: "Peito",
			WorkoutID: workout.ID, Sets: 3, Reps: 10, RestSeconds: 60,
		}
		require.NoError(t, db.Create(&ex).Error)
		exerciseIDs = append(exerciseIDs, ex.ID)
	}
	return workout.ID, exerciseIDs
}

func TestSessionServiceCreate(t *testing.T) {
	t.Run("persists a session with one set row per pair", func(t *testing.T) {
		svc := NewSessionService(testhelpers.SetupTestDatabase(t))
		workoutID, exerciseIDs := seedWorkout(t, svc, 1)

		sessionID, inserted, err := svc.Create(&SessionInsert{
			Duration:    55,
			WorkoutID:   workoutID,
			Description: "treino pesado",
			Exercises: []SessionExerciseLog{
				{ExerciseID: exerciseIDs[0], Reps: []int{10, 8, 6}, Loads: []float64{60, 65, 70}},
				{ExerciseID: exerciseIDs[1], Reps: []int{12, 12}, Loads: []float64{14, 14}},
			},
		})
		require.NoError(t, err)
		assert.NotZero(t, sessionID)
		require.Len(t, inserted, 5)
		assert.NotZero(t, inserted[0].ID)

		var sets []models.SessionSet
		require.NoError(t, svc.db.Order("id_serie").Find(&sets).Error)
		require.Len(t, sets, 5)
		assert.Equal(t, 1, sets[0].SetNumber)
		assert.Equal(t, 3, sets[2].SetNumber)
		assert.Equal(t, 70.0, sets[2].Load)
		assert.Equal(t, exerciseIDs[1], sets[3].ExerciseID)
	})

	cases := []struct {
		name   string
		insert SessionInsert
		field  string
	}{
		{
			"no exercises",
			SessionInsert{Duration: 30, WorkoutID: 1},
			"exercicios",
		},
		{
			"empty sets",
			SessionInsert{Duration: 30, WorkoutID: 1, Exercises: []SessionExerciseLog{{ExerciseID: 1}}},
			"repeticoes",
		},
		{
			"mismatched reps and loads",
			SessionInsert{Duration: 30, WorkoutID: 1, Exercises: []SessionExerciseLog{
				{ExerciseID: 1, Reps: []int{10, 8}, Loads: []float64{60}},
			}},
			"cargas",
		},
		{
			"zero exercise id",
			SessionInsert{Duration: 30, WorkoutID: 1, Exercises: []SessionExerciseLog{
				{ExerciseID: 0, Reps: []int{10}, Loads: []float64{60}},
			}},
			"id_exercicio",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSessionService(testhelpers.SetupTestDatabase(t))

			_, _, err := svc.Create(&tc.insert)
			var validation *PlanValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)

			var sessions int64
			require.NoError(t, svc.db.Model(&models.WorkoutSession{}).Count(&sessions).Error)
			assert.Zero(t, sessions)
		})
	}
}

func TestSessionServiceHistory(t *testing.T) {
	svc := NewSessionService(testhelpers.SetupTestDatabase(t))
	workoutID, exerciseIDs := seedWorkout(t, svc, 1)

	sessionID, _, err := svc.Create(&SessionInsert{
		Duration:    55,
		WorkoutID:   workoutID,
		Description: "treino pesado",
		Exercises: []SessionExerciseLog{
			{ExerciseID: exerciseIDs[0], Reps: []int{10, 8}, Loads: []float64{60, 65}},
			{ExerciseID: exerciseIDs[1], Reps: []int{12}, Loads: []float64{14}},
		},
	})
	require.NoError(t, err)

	t.Run("lists sessions with exercise counts", func(t *testing.T) {
		rows, err := svc.ListUserSessions(1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, sessionID, rows[0].ID)
		assert.Equal(t, "Treino A", rows[0].WorkoutName)
		assert.Equal(t, 2, rows[0].ExerciseCount)
	})

	t.Run("other users have no history", func(t *testing.T) {
		rows, err := svc.ListUserSessions(99)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("groups sets per exercise", func(t *testing.T) {
		details, err := svc.SessionExercises(sessionID)
		require.NoError(t, err)
		require.Len(t, details, 2)

		assert.Equal(t, "Supino Reto", details[0].Name)
		require.Len(t, details[0].Sets, 2)
		assert.Equal(t, 1, details[0].Sets[0].SetNumber)
		assert.Equal(t, 65.0, details[0].Sets[1].Load)

		assert.Equal(t, "Crucifixo", details[1].Name)
		require.Len(t, details[1].Sets, 1)
	})
}
