package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/internal/models"
)

// SessionService records executed workout sessions and their sets.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// SessionExerciseLog is the performed sets of one exercise within a session.
// Reps and Loads are parallel slices, one entry per set.
type SessionExerciseLog struct {
	ExerciseID uint      `json:"id_exercicio"`
	Reps       []int     `json:"repeticoes"`
	Loads      []float64 `json:"cargas"`
}

// SessionInsert is a session log submitted by the client.
type SessionInsert struct {
	Duration    int                  `json:"duracao"`
	WorkoutID   uint                 `json:"id_treino"`
	Description string               `json:"descricao"`
	Exercises   []SessionExerciseLog `json:"exercicios"`
}

// Create validates and persists a session with all of its sets in a single
// transaction. Returns the new session id and the inserted sets.
func (s *SessionService) Create(in *SessionInsert) (uint, []models.SessionSet, error) {
	if len(in.Exercises) == 0 {
		return 0, nil, invalidField("exercicios", "a sessão deve conter ao menos um exercício")
	}
	for _, ex := range in.Exercises {
		if ex.ExerciseID < 1 {
			return 0, nil, invalidField("id_exercicio", "deve ser um inteiro positivo")
		}
		if len(ex.Reps) == 0 {
			return 0, nil, invalidField("repeticoes", "deve conter ao menos uma série")
		}
		if len(ex.Reps) != len(ex.Loads) {
			return 0, nil, invalidField("cargas", "repetições e cargas devem ter o mesmo tamanho")
		}
	}

	var sessionID uint
	var sets []models.SessionSet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session := models.WorkoutSession{
			Duration:    in.Duration,
			Description: in.Description,
			WorkoutID:   in.WorkoutID,
		}
		if err := tx.Create(&session).Error; err != nil {
			return fmt.Errorf("falha ao inserir sessão: %w", err)
		}

		for _, ex := range in.Exercises {
			for i := range ex.Reps {
				set := models.SessionSet{
					SetNumber:  i + 1,
					Reps:       ex.Reps[i],
					Load:       ex.Loads[i],
					ExerciseID: ex.ExerciseID,
					SessionID:  session.ID,
				}
				if err := tx.Create(&set).Error; err != nil {
					return fmt.Errorf("falha ao inserir série: %w", err)
				}
				sets = append(sets, set)
			}
		}

		sessionID = session.ID
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return sessionID, sets, nil
}

// SessionRow is a session as listed in a user's history.
type SessionRow struct {
	ID            uint   `gorm:"column:id_sessao" json:"id_sessao"`
	Duration      int    `gorm:"column:duracao_sessao" json:"duracao_sessao"`
	Description   string `gorm:"column:descricao" json:"descricao"`
	WorkoutID     uint   `gorm:"column:id_treino" json:"id_treino"`
	WorkoutName   string `gorm:"column:treino_nome" json:"treino_nome"`
	ExerciseCount int    `gorm:"column:qtd_exercicios" json:"qtd_exercicios"`
}

// ListUserSessions returns the session history of a user with how many
// distinct exercises each session touched.
func (s *SessionService) ListUserSessions(userID uint) ([]SessionRow, error) {
	var rows []SessionRow
	err := s.db.Model(&models.WorkoutSession{}).
		Select("sessao_treino.id_sessao, sessao_treino.duracao_sessao, sessao_treino.descricao, sessao_treino.id_treino, treino.nome AS treino_nome, COUNT(DISTINCT exercicio_treino.id_ex_treino) AS qtd_exercicios").
		Joins("JOIN treino ON treino.id = sessao_treino.id_treino").
		Joins("LEFT JOIN exercicio_treino ON exercicio_treino.id_treino = treino.id").
		Where("treino.id_usuario = ?", userID).
		Group("sessao_treino.id_sessao, sessao_treino.duracao_sessao, sessao_treino.descricao, sessao_treino.id_treino, treino.nome").
		Order("sessao_treino.id_sessao").
		Scan(&rows).Error
	return rows, err
}

// SessionSetRow is one performed set inside a session's exercise detail.
type SessionSetRow struct {
	ID        uint    `json:"id_serie"`
	SetNumber int     `json:"numero_serie"`
	Reps      int     `json:"repeticoes"`
	Load      float64 `json:"carga"`
}

// SessionExerciseDetail groups the sets of one exercise within a session.
type SessionExerciseDetail struct {
	ExerciseID  uint            `json:"id_ex_treino"`
	Name        string          `json:"nome_exercicio"`
	Equipment   string          `json:"equipamento"`
	Sets        []SessionSetRow `json:"series"`
}

// SessionExercises returns the sets of a session grouped by exercise, in
// set-number order.
func (s *SessionService) SessionExercises(sessionID uint) ([]SessionExerciseDetail, error) {
	var raw []struct {
		SetID      uint    `gorm:"column:id_serie"`
		SetNumber  int     `gorm:"column:numero_serie"`
		Reps       int     `gorm:"column:repeticoes"`
		Load       float64 `gorm:"column:carga"`
		ExerciseID uint    `gorm:"column:id_ex_treino"`
		Name       string  `gorm:"column:nome_exercicio"`
		Equipment  string  `gorm:"column:equipamento"`
	}
	err := s.db.Model(&models.SessionSet{}).
		Select("series.id_serie, series.numero_serie, series.repeticoes, series.carga, exercicio_treino.id_ex_treino, exercicio_treino.nome_exercicio, exercicio_treino.equipamento").
		Joins("JOIN exercicio_treino ON exercicio_treino.id_ex_treino = series.id_ex_treino").
		Where("series.id_sessao = ?", sessionID).
		Order("exercicio_treino.id_ex_treino, series.numero_serie").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	details := make([]SessionExerciseDetail, 0)
	index := make(map[uint]int)
	for _, r := range raw {
		i, ok := index[r.ExerciseID]
		if !ok {
			details = append(details, SessionExerciseDetail{
				ExerciseID: r.ExerciseID,
				Name:       r.Name,
				Equipment:  r.Equipment,
			})
			i = len(details) - 1
			index[r.ExerciseID] = i
		}
		details[i].Sets = append(details[i].Sets, SessionSetRow{
			ID:        r.SetID,
			SetNumber: r.SetNumber,
			Reps:      r.Reps,
			Load:      r.Load,
		})
	}
	return details, nil
}
