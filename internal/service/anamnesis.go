package service

// WorkoutAnamnesis is the intake questionnaire for workout-plan generation.
// Field presence and basic types are all the server guarantees; the content
// is interpreted by the model.
type WorkoutAnamnesis struct {
	UserID            int      `json:"usuario_id"`
	Age               int      `json:"idade"`
	Sex               string   `json:"sexo"`
	Weight            float64  `json:"peso"`
	Experience        string   `json:"experiencia"`
	TrainingTime      string   `json:"tempo_treino"`
	DaysPerWeek       string   `json:"dias_semana"`
	TimePerSession    string   `json:"tempo_treino_por_dia"`
	Goals             []string `json:"objetivos"`
	SpecificGoal      string   `json:"objetivo_especifico"`
	Injuries          string   `json:"lesao"`
	MedicalCondition  string   `json:"condicao_medica"`
	DislikedExercises string   `json:"exercicio_nao_gosta"`
	Equipment         string   `json:"equipamentos"`
}

// DietAnamnesis is the intake questionnaire for diet-plan generation.
type DietAnamnesis struct {
	UserID           int     `json:"usuario_id"`
	Sex              string  `json:"sexo"`
	Age              int     `json:"idade"`
	Height           float64 `json:"altura"`
	CurrentWeight    float64 `json:"pesoatual"`
	TargetWeight     float64 `json:"pesodesejado"`
	Goal             string  `json:"objetivo"`
	TargetDate       string  `json:"data_meta"`
	RoutineReview    string  `json:"avalicao_rotina"`
	Budget           string  `json:"orcamento"`
	AccessibleFoods  bool    `json:"alimentos_acessiveis"`
	EatsOut          bool    `json:"come_fora"`
	DietType         string  `json:"tipo_alimentacao"`
	LikedFoods       string  `json:"alimentos_gosta"`
	DislikedFoods    string  `json:"alimentos_nao_gosta"`
	MealsPerDay      int     `json:"qtd_refeicoes"`
	SnacksBetween    bool    `json:"lanche_entre_refeicoes"`
	MealSchedule     string  `json:"horario_alimentacao"`
	CooksOwnMeals    bool    `json:"prepara_propria_refeicao"`
	WhereEats        string  `json:"onde_come"`
	HasAllergies     bool    `json:"possui_alergias"`
	MedicalCondition string  `json:"possui_condicao_medica"`
	UsesSupplements  bool    `json:"uso_suplementos"`
}
