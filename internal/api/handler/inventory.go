package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/inventory"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ListInventory(service inventory.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		items, err := service.ListItems(businessID)
		if err != nil {
			logrus.WithError(err).Error("Error al listar inventario")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar inventario", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

func CreateInventoryItem(service inventory.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		var req domain.UpsertInventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		item, err := service.CreateItem(businessID, &req)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}
}

func UpdateInventoryItem(service inventory.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		current, err := service.GetItem(itemID)
		if err != nil {
			handleInventoryError(w, err)
			return
		}
		if _, ok := requireOwnership(w, businessService, current.BusinessID, claims.UserID); !ok {
			return
		}

		var req domain.UpsertInventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		item, err := service.UpdateItem(itemID, &req)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(item)
	}
}

func DeleteInventoryItem(service inventory.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		current, err := service.GetItem(itemID)
		if err != nil {
			handleInventoryError(w, err)
			return
		}
		if _, ok := requireOwnership(w, businessService, current.BusinessID, claims.UserID); !ok {
			return
		}

		if err := service.DeleteItem(itemID); err != nil {
			handleInventoryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleInventoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Item de inventario no encontrado", nil)

	case errors.Is(err, inventory.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre del item es obligatorio", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al procesar el inventario", nil)
	}
}
