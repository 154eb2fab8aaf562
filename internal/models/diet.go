package models

// Diet is a named meal plan owned by a user. The user reference does not
// cascade, matching the production schema: users with diets cannot be
// deleted outright.
type Diet struct {
	ID          uint   `gorm:"column:id_dieta;primaryKey" json:"id_dieta"`
	Name        string `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
	UserID      uint   `gorm:"column:id_usuario;not null" json:"id_usuario"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Diet) TableName() string { return "dieta" }

// Meal is one entry of a diet. Foods is a semicolon-delimited list in the
// form "Name - Quantity - Preparation".
type Meal struct {
	ID       uint   `gorm:"column:id_refeicao;primaryKey" json:"id_refeicao"`
	Calories int    `gorm:"column:calorias" json:"calorias"`
	Foods    string `gorm:"column:alimentos;size:5000;not null" json:"alimentos"`
	MealType string `gorm:"column:tipo_refeicao;size:50;not null" json:"tipo_refeicao"`
	DietID   uint   `gorm:"column:id_dieta;not null" json:"id_dieta"`

	Diet Diet `gorm:"foreignKey:DietID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Meal) TableName() string { return "refeicoes" }
