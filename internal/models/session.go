package models

// WorkoutSession is one logged execution of a workout.
type WorkoutSession struct {
	ID          uint   `gorm:"column:id_sessao;primaryKey" json:"id_sessao"`
	Duration    int    `gorm:"column:duracao_sessao" json:"duracao_sessao"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
	WorkoutID   uint   `gorm:"column:id_treino;not null" json:"id_treino"`

	Workout Workout `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (WorkoutSession) TableName() string { return "sessao_treino" }

// SessionSet is one performed set of an exercise within a session.
type SessionSet struct {
	ID         uint    `gorm:"column:id_serie;primaryKey" json:"id_serie"`
	SetNumber  int     `gorm:"column:numero_serie;not null" json:"numero_serie"`
	Reps       int     `gorm:"column:repeticoes;not null" json:"repeticoes"`
	Load       float64 `gorm:"column:carga;type:decimal(5,2)" json:"carga"`
	ExerciseID uint    `gorm:"column:id_ex_treino;not null" json:"id_ex_treino"`
	SessionID  uint    `gorm:"column:id_sessao;not null" json:"id_sessao"`

	Exercise WorkoutExercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Session  WorkoutSession  `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (SessionSet) TableName() string { return "series" }
