package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile es la cuenta de un usuario. El alta queda pendiente hasta que el
// PIN enviado por WhatsApp se verifica.
type Profile struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone"`
	Pin          string     `json:"-"`
	PinSentAt    *time.Time `json:"-"`
	PinVerified  bool       `json:"pin_verified"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Claims son los claims del token JWT emitido en el login.
type Claims struct {
	UserID    string
	UserEmail string
	UserPhone string
	jwt.RegisteredClaims
}
