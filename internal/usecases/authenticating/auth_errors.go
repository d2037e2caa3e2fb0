package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación
var (
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUserDisabled        = errors.New("usuario desactivado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrUserAlreadyExists   = errors.New("el usuario ya existe")
	ErrInvalidPin          = errors.New("PIN incorrecto")
	ErrPinExpired          = errors.New("PIN caducado")
	ErrPinNotVerified      = errors.New("el PIN todavía no se ha verificado")
	ErrMissingRequiredData = errors.New("faltan datos obligatorios")
	ErrDatabaseOperation   = errors.New("error al operar con la base de datos")
)

// AuthError añade a un error base el código de API y detalles para el cliente
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica si el error se debe a credenciales o PIN inválidos
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrInvalidPin) ||
		errors.Is(err, ErrPinExpired) ||
		errors.Is(err, ErrPinNotVerified)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
