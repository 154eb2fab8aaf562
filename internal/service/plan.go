package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts JSON numbers and numeric strings. Model output is not
// reliable about numeric types, and confirmed plans round-trip through the
// client untouched.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("invalid integer %q", str)
		}
		*f = FlexInt(v)
		return nil
	}

	return fmt.Errorf("invalid integer value %s", string(data))
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}

// Int returns the plain integer value.
func (f FlexInt) Int() int { return int(f) }

// WorkoutProgramPayload is the program header of a generated workout plan.
type WorkoutProgramPayload struct {
	Name        string `json:"nomePrograma"`
	Description string `json:"descricaoPrograma"`
}

// WorkoutPlanPayload is a workout plan as produced by the model and echoed
// back by the client on confirmation.
type WorkoutPlanPayload struct {
	Program  *WorkoutProgramPayload `json:"programaTreino"`
	Workouts []WorkoutPayload       `json:"treinos"`
}

type WorkoutPayload struct {
	Name        string            `json:"nome"`
	Description string            `json:"descricao"`
	UserID      FlexInt           `json:"idUsuario"`
	Duration    FlexInt           `json:"duracaoMinutos"`
	Difficulty  string            `json:"dificuldade"`
	Exercises   []ExercisePayload `json:"exercicios"`
}

type ExercisePayload struct {
	Name        string  `json:"nomeExercicio"`
	Equipment   string  `json:"equipamento"`
	MuscleGroup string  `json:"grupoMuscular"`
	Sets        FlexInt `json:"series"`
	Reps        FlexInt `json:"repeticoes"`
	RestSeconds FlexInt `json:"descansoSegundos"`
}

// DietPlanPayload is a diet plan as produced by the model and echoed back by
// the client on confirmation.
type DietPlanPayload struct {
	Name        string        `json:"nome"`
	Description string        `json:"descricao"`
	UserID      FlexInt       `json:"usuario"`
	Meals       []MealPayload `json:"refeicoes"`
}

type MealPayload struct {
	Calories FlexInt `json:"calorias"`
	Foods    string  `json:"alimentos"`
	MealType string  `json:"tipoRefeicao"`
}
