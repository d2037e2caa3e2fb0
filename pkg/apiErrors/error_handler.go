package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error de la API
const (
	// Errores de autenticación (AUTH)
	ErrInvalidCredentials    = "AUTH_001" // Credenciales inválidas
	ErrUserDisabled          = "AUTH_002" // Usuario desactivado
	ErrUserNotFound          = "AUTH_003" // Usuario no encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilegios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuario ya registrado
	ErrInvalidPin            = "AUTH_008" // PIN incorrecto
	ErrPinNotVerified        = "AUTH_009" // PIN pendiente de verificación

	// Errores de validación (VAL)
	ErrInvalidRequest      = "VAL_001" // Petición inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores de recursos (RES)
	ErrResourceNotFound = "RES_001" // Recurso no encontrado
	ErrVersionConflict  = "RES_002" // Conflicto de versión al escribir el esquema

	// Errores del servidor (SRV)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de base de datos
	ErrExternalService   = "SRV_003" // Error en servicio externo
	ErrMissingConfig     = "SRV_004" // Configuración del servidor incompleta
)

// Mapeo de códigos de error a status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidPin:            http.StatusUnauthorized,
	ErrPinNotVerified:        http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrVersionConflict:       http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrMissingConfig:         http.StatusInternalServerError,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalles adicionales (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteErrorWithStatus escribe el error con un status HTTP explícito. Se usa
// para propagar el status original de un proveedor externo.
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
