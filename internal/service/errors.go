package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUserExists is returned when registering a username or email that
	// is already taken.
	ErrUserExists = errors.New("usuário ou e-mail já cadastrado")
	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("usuário não encontrado")
	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	// ErrModelKeyMissing is returned when no model API credential is
	// configured.
	ErrModelKeyMissing = errors.New("OPENAI_API_KEY não configurada")
	// ErrEmptyModelResponse is returned when the model answered with no
	// textual content at all.
	ErrEmptyModelResponse = errors.New("resposta vazia do modelo")
)

// PlanValidationError marks a client-fault problem in a submitted plan or
// session payload. Field names the JSON field that failed so callers can
// answer with a 4xx naming it.
type PlanValidationError struct {
	Field  string
	Reason string
}

func (e *PlanValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *PlanValidationError {
	return &PlanValidationError{Field: field, Reason: reason}
}

// ModelDecodeError marks a model response that could not be decoded as JSON
// even after the repair pass. It is an upstream fault, not a request fault.
type ModelDecodeError struct {
	Raw string
	Err error
}

func (e *ModelDecodeError) Error() string {
	return fmt.Sprintf("falha ao decodificar JSON da IA: %v", e.Err)
}

func (e *ModelDecodeError) Unwrap() error { return e.Err }
