package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp"
	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/dumar-app/dumar-api/pkg/log"
)

type Authenticator interface {
	Signup(ctx context.Context, email, password, phone string) (*domain.Profile, error)
	Login(email, password string) (string, error)
	VerifyPin(email, pin string) error
	ResendPin(ctx context.Context, email string) error
	GetProfile(profileID string) (*domain.Profile, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	profileRepo repository.ProfileRepository
	pinSender   whatsapp.PinSender
	cfg         *config.Config
}

func NewService(profileRepo repository.ProfileRepository, pinSender whatsapp.PinSender, cfg *config.Config) Authenticator {
	return &Service{
		profileRepo: profileRepo,
		pinSender:   pinSender,
		cfg:         cfg,
	}
}

// Signup crea el perfil desactivado y envía el PIN de verificación por
// WhatsApp. Si el envío falla el alta se mantiene: el usuario puede pedir
// un reenvío.
func (s *Service) Signup(ctx context.Context, email, password, phone string) (*domain.Profile, error) {
	if email == "" || password == "" || phone == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, contraseña y teléfono son obligatorios")
	}

	email = handleEmail(email)

	existing, err := s.profileRepo.GetProfileByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el perfil")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email ya registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
		PinVerified:  false,
		Active:       false,
	}

	profile, err = s.profileRepo.CreateProfile(profile)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al crear el perfil")
	}

	if err := s.sendPin(ctx, profile); err != nil {
		log.L.WithFields(log.Fields{
			"profile_id": profile.ID,
			"error":      err.Error(),
		}).Warn("No se pudo enviar el PIN de verificación en el alta")
	}

	return profile, nil
}

// Login emite un JWT si las credenciales son correctas y el PIN ya está
// verificado.
func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email y contraseña son obligatorios")
	}

	email = handleEmail(email)

	profile, err := s.profileRepo.GetProfileByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el perfil")
	}

	if profile == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, profile.ID, "Contraseña incorrecta")
	}

	if !profile.PinVerified {
		return "", NewUserAuthError(ErrPinNotVerified, apiErrors.ErrPinNotVerified, profile.ID, "Verifica el PIN enviado por WhatsApp antes de entrar")
	}

	if !profile.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, profile.ID, "Cuenta desactivada")
	}

	token, err := generateJWT(profile, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de autenticación")
	}

	return token, nil
}

// VerifyPin compara el PIN recibido con el almacenado y, si coincide y no ha
// caducado, activa la cuenta.
func (s *Service) VerifyPin(email, pin string) error {
	if email == "" || pin == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email y PIN son obligatorios")
	}

	email = handleEmail(email)

	profile, err := s.profileRepo.GetProfileByEmail(email)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el perfil")
	}

	if profile == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	if profile.PinVerified {
		return nil
	}

	if profile.Pin == "" || profile.Pin != pin {
		return NewUserAuthError(ErrInvalidPin, apiErrors.ErrInvalidPin, profile.ID, "PIN incorrecto")
	}

	ttl := time.Duration(s.cfg.Pin.TTLMinutes) * time.Minute
	if profile.PinSentAt != nil && time.Since(*profile.PinSentAt) > ttl {
		return NewUserAuthError(ErrPinExpired, apiErrors.ErrInvalidPin, profile.ID, "El PIN ha caducado, solicita uno nuevo")
	}

	if err := s.profileRepo.MarkPinVerified(profile.ID); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al activar el perfil")
	}

	return nil
}

// ResendPin genera un PIN nuevo y lo envía al teléfono del perfil.
func (s *Service) ResendPin(ctx context.Context, email string) error {
	if email == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email es obligatorio")
	}

	email = handleEmail(email)

	profile, err := s.profileRepo.GetProfileByEmail(email)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el perfil")
	}

	if profile == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	if profile.PinVerified {
		return NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrInvalidRequest, profile.ID, "El perfil ya está verificado")
	}

	return s.sendPin(ctx, profile)
}

func (s *Service) sendPin(ctx context.Context, profile *domain.Profile) error {
	pin, err := generatePin()
	if err != nil {
		return err
	}

	sentAt := time.Now()
	if err := s.profileRepo.SavePin(profile.ID, pin, sentAt); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al guardar el PIN")
	}

	return s.pinSender.SendPin(ctx, profile.Phone, pin)
}

func (s *Service) GetProfile(profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetProfileByID(profileID)
	if err != nil {
		log.L.Error(err)
		return nil, err
	}

	if profile == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	profile.PasswordHash = ""
	profile.Pin = ""
	return profile, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// generatePin genera un PIN numérico de 6 dígitos con crypto/rand
func generatePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateJWT(profile *domain.Profile, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    profile.ID,
		UserEmail: profile.Email,
		UserPhone: profile.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("token inválido")
}
