package service

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
)

// WorkoutPlanService validates generated workout plans and persists them
// across the program/workout/exercise tables.
type WorkoutPlanService struct {
	db *gorm.DB
}

func NewWorkoutPlanService(db *gorm.DB) *WorkoutPlanService {
	return &WorkoutPlanService{db: db}
}

// ProgramSummary identifies a persisted program in confirm responses.
type ProgramSummary struct {
	ID          uint   `json:"id_programa_treino"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// WorkoutPlanResult is the outcome of a confirmed workout plan: the created
// program, the generated workout ids and the original payload echoed back.
type WorkoutPlanResult struct {
	Program    ProgramSummary      `json:"programa"`
	WorkoutIDs []uint              `json:"treinosIds"`
	Plan       *WorkoutPlanPayload `json:"plano"`
}

// ValidateWorkoutPlan checks the shape and numeric constraints of a plan and
// returns the owning user id. Every violation is a PlanValidationError
// naming the offending field.
func ValidateWorkoutPlan(plan *WorkoutPlanPayload) (int, error) {
	if plan == nil || plan.Program == nil {
		return 0, invalidField("programaTreino", "estrutura do plano inválida")
	}
	if len(plan.Workouts) == 0 {
		return 0, invalidField("treinos", "o plano deve conter ao menos um treino")
	}
	if plan.Program.Name == "" {
		return 0, invalidField("nomePrograma", "dados do programa incompletos")
	}
	if plan.Program.Description == "" {
		return 0, invalidField("descricaoPrograma", "dados do programa incompletos")
	}

	owner := plan.Workouts[0].UserID.Int()
	if owner < 1 {
		return 0, invalidField("idUsuario", "deve ser um inteiro positivo")
	}

	for _, w := range plan.Workouts {
		if w.UserID.Int() < 1 {
			return 0, invalidField("idUsuario", "deve ser um inteiro positivo")
		}
		if w.UserID.Int() != owner {
			return 0, invalidField("idUsuario", "todos os treinos do programa devem pertencer ao mesmo usuário")
		}
		if w.Duration.Int() < 10 {
			return 0, invalidField("duracaoMinutos", "deve ser no mínimo 10")
		}
		if w.Name == "" {
			return 0, invalidField("nome", "dados obrigatórios do treino ausentes")
		}
		if w.Description == "" {
			return 0, invalidField("descricao", "dados obrigatórios do treino ausentes")
		}
		if w.Difficulty == "" {
			return 0, invalidField("dificuldade", "dados obrigatórios do treino ausentes")
		}
		if len(w.Exercises) == 0 {
			return 0, invalidField("exercicios", "treino gerado sem exercícios")
		}

		for _, ex := range w.Exercises {
			if ex.Name == "" {
				return 0, invalidField("nomeExercicio", "dados obrigatórios do exercício ausentes")
			}
			if ex.Equipment == "" {
				return 0, invalidField("equipamento", "dados obrigatórios do exercício ausentes")
			}
			if ex.MuscleGroup == "" {
				return 0, invalidField("grupoMuscular", "dados obrigatórios do exercício ausentes")
			}
			if ex.Sets.Int() < 1 {
				return 0, invalidField("series", "deve ser no mínimo 1")
			}
			if ex.Reps.Int() < 1 {
				return 0, invalidField("repeticoes", "deve ser no mínimo 1")
			}
			if ex.RestSeconds.Int() < 15 {
				return 0, invalidField("descansoSegundos", "deve ser no mínimo 15")
			}
		}
	}

	return owner, nil
}

// Persist validates the plan and writes it in a single transaction: one
// program row, one workout row per workout (keeping each generated id), one
// exercise row per exercise. Any failure rolls everything back.
func (s *WorkoutPlanService) Persist(plan *WorkoutPlanPayload) (*WorkoutPlanResult, error) {
	owner, err := ValidateWorkoutPlan(plan)
	if err != nil {
		return nil, err
	}

	var result *WorkoutPlanResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		program := models.TrainingProgram{
			UserID:      uint(owner),
			Name:        plan.Program.Name,
			Description: plan.Program.Description,
		}
		if err := tx.Create(&program).Error; err != nil {
			return fmt.Errorf("falha ao inserir programa de treino: %w", err)
		}

		workoutIDs := make([]uint, 0, len(plan.Workouts))
		for _, w := range plan.Workouts {
			programID := program.ID
			workout := models.Workout{
				Name:        w.Name,
				Description: w.Description,
				UserID:      uint(w.UserID.Int()),
				ProgramID:   &programID,
				Duration:    w.Duration.Int(),
				Difficulty:  strings.ToLower(w.Difficulty),
			}
			if err := tx.Create(&workout).Error; err != nil {
				return fmt.Errorf("falha ao inserir treino: %w", err)
			}
			workoutIDs = append(workoutIDs, workout.ID)

			for _, ex := range w.Exercises {
				exercise := models.WorkoutExercise{
					Name:        ex.Name,
					Equipment:   ex.Equipment,
					MuscleGroup: ex.MuscleGroup,
					WorkoutID:   workout.ID,
					Sets:        ex.Sets.Int(),
					Reps:        ex.Reps.Int(),
					RestSeconds: ex.RestSeconds.Int(),
				}
				if err := tx.Create(&exercise).Error; err != nil {
					return fmt.Errorf("falha ao inserir exercício do treino: %w", err)
				}
			}
		}

		result = &WorkoutPlanResult{
			Program: ProgramSummary{
				ID:          program.ID,
				Name:        program.Name,
				Description: program.Description,
			},
			WorkoutIDs: workoutIDs,
			Plan:       plan,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ProgramRow is a program as listed for a user.
type ProgramRow struct {
	ID          uint      `gorm:"column:id_programa_treino" json:"id_programa_treino"`
	UserID      uint      `gorm:"column:id_usu" json:"id_usu"`
	Name        string    `gorm:"column:nome" json:"nome"`
	Description string    `gorm:"column:descricao" json:"descricao"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// ListUserPrograms returns a user's training programs, newest first.
func (s *WorkoutPlanService) ListUserPrograms(userID uint) ([]ProgramRow, error) {
	var rows []ProgramRow
	err := s.db.Model(&models.TrainingProgram{}).
		Select("id_programa_treino, id_usu, nome, descricao, created_at, updated_at").
		Where("id_usu = ?", userID).
		Order("created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// WorkoutRow is a workout as listed inside a program.
type WorkoutRow struct {
	ID          uint   `gorm:"column:id" json:"id"`
	Name        string `gorm:"column:nome" json:"nome"`
	Description string `gorm:"column:descricao" json:"descricao"`
	Duration    int    `gorm:"column:duracao" json:"duracao"`
	Difficulty  string `gorm:"column:dificuldade" json:"dificuldade"`
}

// ListProgramWorkouts returns the workouts of a program.
func (s *WorkoutPlanService) ListProgramWorkouts(programID uint) ([]WorkoutRow, error) {
	var rows []WorkoutRow
	err := s.db.Model(&models.Workout{}).
		Select("id, nome, descricao, duracao, dificuldade").
		Where("id_programa_treino = ?", programID).
		Order("id").
		Scan(&rows).Error
	return rows, err
}

// ExerciseRow is an exercise as listed inside a workout.
type ExerciseRow struct {
	ID          uint   `gorm:"column:id_ex_treino" json:"id_ex_treino"`
	Name        string `gorm:"column:nome_exercicio" json:"nome_exercicio"`
	MuscleGroup string `gorm:"column:grupo_muscular" json:"grupo_muscular"`
	Equipment   string `gorm:"column:equipamento" json:"equipamento"`
	RestSeconds int    `gorm:"column:descanso" json:"descanso"`
	Sets        int    `gorm:"column:series" json:"series"`
	Reps        int    `gorm:"column:reps" json:"reps"`
}

// ListWorkoutExercises returns the exercises of a workout.
func (s *WorkoutPlanService) ListWorkoutExercises(workoutID uint) ([]ExerciseRow, error) {
	var rows []ExerciseRow
	err := s.db.Model(&models.WorkoutExercise{}).
		Select("id_ex_treino, nome_exercicio, grupo_muscular, equipamento, descanso, series, reps").
		Where("id_treino = ?", workoutID).
		Order("id_ex_treino").
		Scan(&rows).Error
	return rows, err
}
