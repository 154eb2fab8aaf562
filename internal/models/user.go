package models

import "time"

// User is an application account. Email and username are unique.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Email        string    `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:senha;size:255;not null" json:"-"`
	Username     string    `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuario" }
