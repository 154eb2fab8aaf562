package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/config"
	"github.com/apureza/fitcoach-v2/backend/internal/models"
)

// AuthService handles registration, login and JWT issuance.
type AuthService struct {
	db     *gorm.DB
	secret []byte
	method jwt.SigningMethod
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		secret: []byte(cfg.SecretKey),
		method: cfg.SigningMethod(),
	}
}

// TokenClaims is the identity carried inside an issued token.
type TokenClaims struct {
	UserID   uint
	Name     string
	Email    string
	Username string
}

// Register creates a new account and returns a signed token for it.
// Username and email must both be unused.
func (s *AuthService) Register(name, email, username, password string) (string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return "", fmt.Errorf("falha ao verificar usuário existente: %w", err)
	}
	if count > 0 {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Username:     username,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("falha ao cadastrar usuário: %w", err)
	}

	return s.GenerateToken(&user)
}

// Login verifies the credentials for an email and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(&user)
}

// GenerateToken signs a token whose subject carries the user's identity.
// Tokens expire after one hour.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": map[string]any{
			"id":       user.ID,
			"nome":     user.Name,
			"email":    user.Email,
			"username": user.Username,
		},
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token and returns its identity claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token inválido ou expirado")
	}
	sub, ok := mapClaims["sub"].(map[string]any)
	if !ok {
		return nil, errors.New("token inválido ou expirado")
	}

	claims := &TokenClaims{}
	if id, ok := sub["id"].(float64); ok {
		claims.UserID = uint(id)
	}
	claims.Name, _ = sub["nome"].(string)
	claims.Email, _ = sub["email"].(string)
	claims.Username, _ = sub["username"].(string)
	if claims.UserID == 0 {
		return nil, errors.New("token inválido ou expirado")
	}
	return claims, nil
}
