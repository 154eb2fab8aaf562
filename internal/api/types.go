package api

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"nome" binding:"required"`
	Password string `json:"senha" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}
