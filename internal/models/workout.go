package models

import "time"

// TrainingProgram groups the workouts generated together for one user.
// Deleting the user cascades down to programs, workouts and exercises.
type TrainingProgram struct {
	ID          uint      `gorm:"column:id_programa_treino;primaryKey" json:"id_programa_treino"`
	UserID      uint      `gorm:"column:id_usu;not null" json:"id_usu"`
	Name        string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string    `gorm:"column:descricao;size:255" json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TrainingProgram) TableName() string { return "programa_treino" }

// Workout is one training day of a program. The program reference is
// nullable: a program deletion detaches its workouts instead of removing
// them.
type Workout struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string    `gorm:"column:descricao;size:255" json:"descricao"`
	UserID      uint      `gorm:"column:id_usuario;not null" json:"id_usuario"`
	ProgramID   *uint     `gorm:"column:id_programa_treino" json:"id_programa_treino"`
	Duration    int       `gorm:"column:duracao" json:"duracao"`
	Difficulty  string    `gorm:"column:dificuldade;size:50" json:"dificuldade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User    User             `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Program *TrainingProgram `gorm:"foreignKey:ProgramID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Workout) TableName() string { return "treino" }

// WorkoutExercise is a prescribed exercise inside a workout.
type WorkoutExercise struct {
	ID          uint   `gorm:"column:id_ex_treino;primaryKey" json:"id_ex_treino"`
	Name        string `gorm:"column:nome_exercicio;size:100;not null" json:"nome_exercicio"`
	Equipment   string `gorm:"column:equipamento;size:100;not null" json:"equipamento"`
	MuscleGroup string `gorm:"column:grupo_muscular;size:100;not null" json:"grupo_muscular"`
	WorkoutID   uint   `gorm:"column:id_treino;not null" json:"id_treino"`
	Sets        int    `gorm:"column:series" json:"series"`
	RestSeconds int    `gorm:"column:descanso" json:"descanso"`
	Reps        int    `gorm:"column:reps" json:"reps"`

	Workout Workout `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (WorkoutExercise) TableName() string { return "exercicio_treino" }
