package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
)

// BusinessMetricsSyncConfig representa la configuración del agendador de
// métricas por negocio
type BusinessMetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BusinessMetricsSyncService recalcula cada noche la foto de métricas de
// todos los negocios
type BusinessMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              BusinessMetricsSyncConfig
	businessRepo        repository.BusinessRepository
	businessService     business.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewBusinessMetricsSyncService crea una nueva instancia del servicio de
// sincronización de métricas
func NewBusinessMetricsSyncService(
	businessRepo repository.BusinessRepository,
	businessService business.Service,
	appConfig *config.Config,
) *BusinessMetricsSyncService {
	syncConfig := BusinessMetricsSyncConfig{
		CronSchedule: appConfig.MetricsSync.CronSchedule,
		SyncEnabled:  appConfig.MetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de métricas cargada")

	return &BusinessMetricsSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		businessRepo:    businessRepo,
		businessService: businessService,
		syncRunning:     false,
	}
}

// Start inicia el agendador
func (s *BusinessMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de métricas desactivada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de métricas por negocio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBusinessMetrics()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de métricas por negocio")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara una sincronización manual inmediata
func (s *BusinessMetricsSyncService) RunNow() {
	go s.syncAllBusinessMetrics()
}

// Status devuelve el estado actual del agendador para el endpoint de cron
func (s *BusinessMetricsSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}

// syncAllBusinessMetrics recalcula las métricas de todos los negocios
func (s *BusinessMetricsSyncService) syncAllBusinessMetrics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de métricas ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo de métricas para todos los negocios")

	businesses, err := s.businessRepo.ListAllBusinesses()
	if err != nil {
		logrus.WithError(err).Error("Error al listar los negocios para el recálculo de métricas")
		return
	}

	if len(businesses) == 0 {
		logrus.Info("Ningún negocio encontrado para el recálculo de métricas")
		return
	}

	processed := 0
	failed := 0
	for _, b := range businesses {
		if _, err := s.businessService.RecomputeMetrics(b.ID); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("Error al recalcular las métricas del negocio")
			continue
		}
		processed++
	}

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"businesses": len(businesses),
		"processed":  processed,
		"failed":     failed,
	}).Info("Recálculo de métricas concluido")
}
