package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/movement"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/dumar-app/dumar-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

func ListMovements(service movement.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		filter, err := movementFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		movements, err := service.ListMovements(businessID, filter)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("movimientos: error al listar")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar movimientos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(movements)
	}
}

func CreateMovement(service movement.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		var req domain.CreateMovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		resp, err := service.CreateMovement(businessID, &req)
		if err != nil {
			handleMovementError(w, err)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"business_id": businessID,
			"movement_id": resp.Movement.ID,
		})
		if resp.Warning != "" || resp.HistoryWarning != "" {
			logger.WithFields(log.Fields{
				"warning":         resp.Warning,
				"history_warning": resp.HistoryWarning,
			}).Warn("movimientos: creado con avisos")
		} else {
			logger.Info("movimientos: creado")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

func UpdateMovement(service movement.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		movementID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		current, err := service.GetMovement(movementID)
		if err != nil {
			handleMovementError(w, err)
			return
		}
		if _, ok := requireOwnership(w, businessService, current.BusinessID, claims.UserID); !ok {
			return
		}

		var req domain.UpdateMovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		updated, err := service.UpdateMovement(movementID, &req)
		if err != nil {
			handleMovementError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteMovement(service movement.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		movementID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		current, err := service.GetMovement(movementID)
		if err != nil {
			handleMovementError(w, err)
			return
		}
		if _, ok := requireOwnership(w, businessService, current.BusinessID, claims.UserID); !ok {
			return
		}

		if err := service.DeleteMovement(movementID); err != nil {
			handleMovementError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// movementFilterFromQuery arma el filtro de listado a partir de la query
// string. Los montos inválidos cortan la petición con 400.
func movementFilterFromQuery(r *http.Request) (domain.MovementFilter, error) {
	filter := domain.MovementFilter{
		Type:      r.URL.Query().Get("type"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if raw := r.URL.Query().Get("min_amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("min_amount inválido")
		}
		filter.MinAmount = &v
	}

	if raw := r.URL.Query().Get("max_amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("max_amount inválido")
		}
		filter.MaxAmount = &v
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errors.New("limit inválido")
		}
		filter.Limit = v
	}

	return filter, nil
}

func handleMovementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, movement.ErrMovementNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Movimiento no encontrado", nil)

	case errors.Is(err, movement.ErrVerticalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vertical no encontrada", nil)

	case errors.Is(err, movement.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de movimiento inválido: debe ser ingreso o gasto", nil)

	case errors.Is(err, movement.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida: se espera YYYY-MM-DD", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al procesar el movimiento", nil)
	}
}
