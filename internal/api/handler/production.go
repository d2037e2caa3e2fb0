package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/dumar-app/dumar-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

func GetVerticalStats(service production.Service, verticalService vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, verticalService, businessService, verticalID); !ok {
			return
		}

		stats, err := service.Stats(verticalID)
		if err != nil {
			handleProductionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func GetProductionRecords(service production.Service, verticalService vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, verticalService, businessService, verticalID); !ok {
			return
		}

		filter, err := movementFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		records, err := service.Records(verticalID, filter)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"vertical_id": verticalID,
				"error":       err.Error(),
			}).Error("producción: error al listar registros")

			handleProductionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// PreviewProduction reconcilia una entrada de producción sin persistir nada:
// devuelve el monto calculado, el aviso de descuadre si lo hay y, para
// huevos, el reparto automático del total entre tipos activos.
func PreviewProduction(service production.Service, verticalService vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, verticalService, businessService, verticalID); !ok {
			return
		}

		var req domain.CreateMovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		preview, err := service.Preview(verticalID, &req)
		if err != nil {
			handleProductionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(preview)
	}
}

func handleProductionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, production.ErrVerticalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vertical no encontrada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al calcular la producción", nil)
	}
}
