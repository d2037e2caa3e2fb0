package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/internal/usecases/authenticating"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PinRequest struct {
	Email string `json:"email"`
	Pin   string `json:"pin"`
}

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		profile, err := service.Signup(r.Context(), req.Email, req.Password, req.Phone)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logrus.WithError(err).Error("Error al enviar la respuesta de alta")
		}
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

func VerifyPin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := service.VerifyPin(req.Email, req.Pin); err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "PIN verificado, la cuenta queda activa",
		})
	}
}

func ResendPin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := service.ResendPin(r.Context(), req.Email); err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "PIN reenviado",
		})
	}
}

// GetMe devuelve el perfil del usuario autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		profile, err := service.GetProfile(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al obtener datos del usuario", nil)
			return
		}
		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar respuesta", nil)
		}
	}
}

// handleAuthError traduce los errores del caso de uso de autenticación a la
// respuesta HTTP correspondiente
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciales inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuario desactivado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)

	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Ya existe una cuenta con ese email", nil)

	case errors.Is(err, authenticating.ErrInvalidPin):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPin, "PIN incorrecto", nil)

	case errors.Is(err, authenticating.ErrPinExpired):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPin, "El PIN expiró, solicitá uno nuevo", nil)

	case errors.Is(err, authenticating.ErrPinNotVerified):
		apiErrors.WriteError(w, apiErrors.ErrPinNotVerified, "La cuenta todavía no verificó el PIN", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Faltan datos obligatorios", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno de autenticación", nil)
	}
}
