package handler

import (
	"net/http"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/dumar-app/dumar-api/pkg/middleware"
	"github.com/pkg/errors"
)

// claimsFromRequest extrae los claims del JWT que el middleware de
// autenticación dejó en el contexto. Si no están, responde 401 y devuelve
// false.
func claimsFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
		return nil, false
	}
	return claims, true
}

// requireOwnership verifica que el negocio exista y pertenezca al usuario
// autenticado. Escribe la respuesta de error cuando la verificación falla.
func requireOwnership(w http.ResponseWriter, svc business.Service, businessID, ownerID string) (*domain.Business, bool) {
	biz, err := svc.CheckOwnership(businessID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Negocio no encontrado", nil)
		case errors.Is(err, business.ErrNotOwner):
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "El negocio pertenece a otro usuario", nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al verificar el negocio", nil)
		}
		return nil, false
	}
	return biz, true
}
