package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/cloudinary"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp"
	"github.com/dumar-app/dumar-api/internal/api/handler"
	"github.com/dumar-app/dumar-api/internal/api/handler/router"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/scheduler"
	"github.com/dumar-app/dumar-api/internal/usecases/authenticating"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/inventory"
	"github.com/dumar-app/dumar-api/internal/usecases/movement"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
	"github.com/dumar-app/dumar-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	businessService business.Service,
	movementService movement.Service,
	verticalService vertical.Service,
	productionService production.Service,
	inventoryService inventory.Service,
	pinSender whatsapp.PinSender,
	uploader cloudinary.Uploader,
	metricsSyncService *scheduler.BusinessMetricsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BusinessMetricsSyncService: metricsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Businesses(businessService)...),
		router.WithRoutes(handler.Movements(movementService, businessService)...),
		router.WithRoutes(handler.Verticals(verticalService, businessService)...),
		router.WithRoutes(handler.Production(productionService, verticalService, businessService)...),
		router.WithRoutes(handler.Inventory(inventoryService, businessService)...),
		router.WithRoutes(handler.Messaging(pinSender)...),
		router.WithRoutes(handler.Uploads(uploader)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado gracioso del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
