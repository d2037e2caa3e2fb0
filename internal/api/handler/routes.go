package handler

import (
	"net/http"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/cloudinary"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp"
	"github.com/dumar-app/dumar-api/internal/api/handler/router"
	"github.com/dumar-app/dumar-api/internal/usecases/authenticating"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/inventory"
	"github.com/dumar-app/dumar-api/internal/usecases/movement"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/pin/verify",
			Method:  http.MethodPost,
			Handler: VerifyPin(service),
		},
		{
			Path:    "/v1/pin/resend",
			Method:  http.MethodPost,
			Handler: ResendPin(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Businesses(service business.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses",
			Method:  http.MethodGet,
			Handler: ListBusinesses(service),
		},
		{
			Path:    "/v1/businesses",
			Method:  http.MethodPost,
			Handler: CreateBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id",
			Method:  http.MethodGet,
			Handler: GetBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id",
			Method:  http.MethodPut,
			Handler: UpdateBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetBusinessMetrics(service),
		},
	}
}

func Movements(service movement.Service, businessService business.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses/:id/movements",
			Method:  http.MethodGet,
			Handler: ListMovements(service, businessService),
		},
		{
			Path:    "/v1/businesses/:id/movements",
			Method:  http.MethodPost,
			Handler: CreateMovement(service, businessService),
		},
		{
			Path:    "/v1/movements/:id",
			Method:  http.MethodPut,
			Handler: UpdateMovement(service, businessService),
		},
		{
			Path:    "/v1/movements/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMovement(service, businessService),
		},
	}
}

func Verticals(service vertical.Service, businessService business.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/templates",
			Method:  http.MethodGet,
			Handler: ListTemplates(service),
		},
		{
			Path:    "/v1/businesses/:id/verticals",
			Method:  http.MethodGet,
			Handler: ListVerticals(service, businessService),
		},
		{
			Path:    "/v1/businesses/:id/verticals",
			Method:  http.MethodPost,
			Handler: CreateVertical(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id",
			Method:  http.MethodGet,
			Handler: GetVertical(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id",
			Method:  http.MethodPut,
			Handler: UpdateVertical(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/schema",
			Method:  http.MethodPut,
			Handler: SaveSchema(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/cows",
			Method:  http.MethodPost,
			Handler: AddCow(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/cows/:cow_id",
			Method:  http.MethodDelete,
			Handler: RemoveCow(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/cows/:cow_id/toggle",
			Method:  http.MethodPost,
			Handler: ToggleCow(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/cows/:cow_id/comments",
			Method:  http.MethodPut,
			Handler: UpdateCowComments(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/cows/:cow_id/history",
			Method:  http.MethodGet,
			Handler: GetCowHistory(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/egg-types",
			Method:  http.MethodPost,
			Handler: AddEggType(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/egg-types/:type_id",
			Method:  http.MethodDelete,
			Handler: RemoveEggType(service, businessService),
		},
		{
			Path:    "/v1/verticals/:id/egg-types/:type_id/toggle",
			Method:  http.MethodPost,
			Handler: ToggleEggType(service, businessService),
		},
	}
}

func Production(service production.Service, verticalService vertical.Service, businessService business.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/verticals/:id/stats",
			Method:  http.MethodGet,
			Handler: GetVerticalStats(service, verticalService, businessService),
		},
		{
			Path:    "/v1/verticals/:id/production",
			Method:  http.MethodGet,
			Handler: GetProductionRecords(service, verticalService, businessService),
		},
		{
			Path:    "/v1/verticals/:id/production/preview",
			Method:  http.MethodPost,
			Handler: PreviewProduction(service, verticalService, businessService),
		},
	}
}

func Inventory(service inventory.Service, businessService business.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses/:id/inventory",
			Method:  http.MethodGet,
			Handler: ListInventory(service, businessService),
		},
		{
			Path:    "/v1/businesses/:id/inventory",
			Method:  http.MethodPost,
			Handler: CreateInventoryItem(service, businessService),
		},
		{
			Path:    "/v1/inventory/:id",
			Method:  http.MethodPut,
			Handler: UpdateInventoryItem(service, businessService),
		},
		{
			Path:    "/v1/inventory/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInventoryItem(service, businessService),
		},
	}
}

func Messaging(sender whatsapp.PinSender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/send-whatsapp",
			Method:  http.MethodPost,
			Handler: SendWhatsApp(sender),
		},
	}
}

func Uploads(uploader cloudinary.Uploader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/uploads/images",
			Method:  http.MethodPost,
			Handler: UploadImage(uploader),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
