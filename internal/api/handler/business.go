package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ListBusinesses(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businesses, err := service.ListBusinesses(claims.UserID)
		if err != nil {
			logrus.WithError(err).Error("Error al listar negocios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar negocios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(businesses)
	}
}

func CreateBusiness(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		biz, err := service.CreateBusiness(claims.UserID, &req)
		if err != nil {
			if errors.Is(err, business.ErrMissingName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre del negocio es obligatorio", nil)
				return
			}
			logrus.WithError(err).Error("Error al crear negocio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al crear negocio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(biz)
	}
}

func GetBusiness(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		biz, ok := requireOwnership(w, service, businessID, claims.UserID)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(biz)
	}
}

func UpdateBusiness(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, service, businessID, claims.UserID); !ok {
			return
		}

		var req domain.UpdateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		biz, err := service.UpdateBusiness(businessID, &req)
		if err != nil {
			logrus.WithError(err).Error("Error al actualizar negocio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar negocio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(biz)
	}
}

func DeleteBusiness(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, service, businessID, claims.UserID); !ok {
			return
		}

		if err := service.DeleteBusiness(businessID); err != nil {
			logrus.WithError(err).Error("Error al eliminar negocio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar negocio", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetBusinessMetrics devuelve la foto de métricas del negocio. Si el
// agendador todavía no la calculó, se calcula en el momento.
func GetBusinessMetrics(service business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, service, businessID, claims.UserID); !ok {
			return
		}

		metrics, err := service.GetMetrics(businessID)
		if err != nil {
			logrus.WithError(err).Error("Error al obtener métricas del negocio")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al obtener métricas del negocio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	}
}
