package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/dumar-app/dumar-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type SaveSchemaRequest struct {
	Schema  domain.Schema `json:"schema"`
	Version int           `json:"version"`
}

type CowRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type CowCommentsRequest struct {
	Comments string `json:"comments"`
}

type EggTypeRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func ListTemplates(service vertical.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := service.ListTemplates()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("verticales: error al listar plantillas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar plantillas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(templates)
	}
}

func ListVerticals(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		// Por defecto sólo las activas; ?all=true incluye las desactivadas.
		activeOnly := r.URL.Query().Get("all") != "true"

		verticals, err := service.ListByBusiness(businessID, activeOnly)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("verticales: error al listar")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar verticales", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(verticals)
	}
}

func CreateVertical(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := requireOwnership(w, businessService, businessID, claims.UserID); !ok {
			return
		}

		var req domain.CreateVerticalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		v, err := service.CreateVertical(businessID, &req)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(v)
	}
}

func GetVertical(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		v, ok := ownedVertical(w, r, service, businessService, verticalID)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
}

func UpdateVertical(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		var req domain.UpdateVerticalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		v, err := service.UpdateVertical(verticalID, &req)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
}

// SaveSchema persiste el esquema completo que manda el editor. La escritura
// es compare-and-set contra la versión que el cliente leyó: si otra pestaña
// guardó antes, responde 409 y el cliente debe recargar.
func SaveSchema(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		var req SaveSchemaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}
		if req.Schema.Variant == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El esquema es obligatorio", nil)
			return
		}

		v, err := service.SaveSchema(verticalID, req.Schema, req.Version)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
}

func AddCow(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		var req CowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}
		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre de la vaca es obligatorio", nil)
			return
		}

		cow, err := service.AddCow(verticalID, req.Name, req.Notes)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(cow)
	}
}

func RemoveCow(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		cowID := params.ByName("cow_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		if err := service.RemoveCow(verticalID, cowID); err != nil {
			handleVerticalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToggleCow(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		cowID := params.ByName("cow_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		if err := service.ToggleCow(verticalID, cowID); err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Estado de producción actualizado",
		})
	}
}

func UpdateCowComments(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		cowID := params.ByName("cow_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		var req CowCommentsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if err := service.UpdateCowComments(verticalID, cowID, req.Comments); err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Comentarios guardados",
		})
	}
}

func GetCowHistory(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		cowID := params.ByName("cow_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		history, err := service.CowHistory(verticalID, cowID)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

func AddEggType(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verticalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		var req EggTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}
		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El nombre del tipo de huevo es obligatorio", nil)
			return
		}

		eggType, err := service.AddEggType(verticalID, req.Name, req.Price, req.Description)
		if err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(eggType)
	}
}

func RemoveEggType(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		typeID := params.ByName("type_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		if err := service.RemoveEggType(verticalID, typeID); err != nil {
			handleVerticalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToggleEggType(service vertical.Service, businessService business.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		verticalID := params.ByName("id")
		typeID := params.ByName("type_id")

		if _, ok := ownedVertical(w, r, service, businessService, verticalID); !ok {
			return
		}

		if err := service.ToggleEggType(verticalID, typeID); err != nil {
			handleVerticalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Estado del tipo de huevo actualizado",
		})
	}
}

// ownedVertical carga la vertical y valida que su negocio pertenezca al
// usuario autenticado.
func ownedVertical(
	w http.ResponseWriter,
	r *http.Request,
	service vertical.Service,
	businessService business.Service,
	verticalID string,
) (*domain.Vertical, bool) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return nil, false
	}

	v, err := service.GetVertical(verticalID)
	if err != nil {
		handleVerticalError(w, err)
		return nil, false
	}

	if _, ok := requireOwnership(w, businessService, v.BusinessID, claims.UserID); !ok {
		return nil, false
	}

	return v, true
}

func handleVerticalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vertical.ErrVerticalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vertical no encontrada", nil)

	case errors.Is(err, vertical.ErrTemplateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Plantilla no encontrada", nil)

	case errors.Is(err, vertical.ErrCowNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vaca no encontrada en el inventario", nil)

	case errors.Is(err, vertical.ErrEggTypeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tipo de huevo no encontrado", nil)

	case errors.Is(err, vertical.ErrWrongSchemaType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "La operación no aplica al tipo de esquema de esta vertical", nil)

	case errors.Is(err, repository.ErrVersionConflict):
		apiErrors.WriteError(w, apiErrors.ErrVersionConflict, "El esquema cambió desde la última lectura, recargá y reintentá", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al procesar la vertical", nil)
	}
}
