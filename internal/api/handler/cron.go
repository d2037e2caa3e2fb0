package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/internal/scheduler"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job que se pueden disparar manualmente.
const (
	CronJobTypeBusinessMetrics = "business-metrics"
	CronJobTypeAll             = "all"
)

// CronJobServices contiene los servicios de cron disponibles para ejecución
// manual y consulta de estado.
type CronJobServices struct {
	BusinessMetricsSyncService *scheduler.BusinessMetricsSyncService
}

// RunCronJob dispara manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if _, ok := claimsFromRequest(w, r); !ok {
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBusinessMetrics, CronJobTypeAll:
			if services.BusinessMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de métricas de negocio no disponible", nil)
				return
			}
			services.BusinessMetricsSyncService.RunNow()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: business-metrics, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFromRequest(w, r); !ok {
			return
		}

		status := map[string]any{
			"business-metrics": services.BusinessMetricsSyncService.Status(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
