package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/cloudinary"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/api"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/scheduler"
	"github.com/dumar-app/dumar-api/internal/usecases/authenticating"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
	"github.com/dumar-app/dumar-api/internal/usecases/inventory"
	"github.com/dumar-app/dumar-api/internal/usecases/movement"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	profileRepo := repository.NewProfileRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	verticalRepo := repository.NewVerticalRepository(pgConn)
	movementRepo := repository.NewMovementRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)
	metricsRepo := repository.NewBusinessMetricsRepository(pgConn)

	whatsAppClient := whatsappclient.NewClient(cfg)
	pinSender := whatsapp.New(cfg, whatsAppClient)
	uploader := cloudinary.New(cfg)

	authenticator := authenticating.NewService(profileRepo, pinSender, cfg)
	businessService := business.NewService(businessRepo, movementRepo, verticalRepo, metricsRepo)
	verticalService := vertical.NewService(verticalRepo)
	movementService := movement.NewService(movementRepo, verticalRepo)
	productionService := production.NewService(verticalRepo, movementRepo)
	inventoryService := inventory.NewService(inventoryRepo)

	metricsSyncService := scheduler.NewBusinessMetricsSyncService(
		businessRepo,
		businessService,
		cfg,
	)

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de métricas de negocio")
	} else {
		logrus.Info("Agendador de métricas de negocio iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		authenticator,
		businessService,
		movementService,
		verticalService,
		productionService,
		inventoryService,
		pinSender,
		uploader,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
