package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/business"
)

func TestBusinessMetricsSyncService_syncAllBusinessMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessRepo := mocks.NewMockBusinessRepository(ctrl)
	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)
	metricsRepo := mocks.NewMockBusinessMetricsRepository(ctrl)

	businesses := []*domain.Business{
		{ID: "b1", Name: "Finca norte"},
		{ID: "b2", Name: "Finca sur"},
	}

	businessRepo.EXPECT().ListAllBusinesses().Return(businesses, nil)

	for _, b := range businesses {
		businessRepo.EXPECT().GetBusinessByID(b.ID).Return(b, nil)
		movementRepo.EXPECT().
			ListMovementsByBusiness(b.ID, domain.MovementFilter{}).
			Return([]*domain.Movement{{Type: domain.MovementIncome, Amount: 10}}, nil)
		verticalRepo.EXPECT().ListVerticalsByBusiness(b.ID, false).Return(nil, nil)
		metricsRepo.EXPECT().
			UpsertMetrics(gomock.Any()).
			DoAndReturn(func(m *domain.BusinessMetrics) error {
				assert.Equal(t, 10.0, m.TotalIncome)
				return nil
			})
	}

	businessService := business.NewService(businessRepo, movementRepo, verticalRepo, metricsRepo)

	appConfig := &config.Config{
		MetricsSync: config.MetricsSync{CronSchedule: "0 3 * * *", Enabled: true},
	}

	service := NewBusinessMetricsSyncService(businessRepo, businessService, appConfig)
	service.syncAllBusinessMetrics()

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.NotEmpty(t, status["last_sync_completed_at"])
}

func TestBusinessMetricsSyncService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessRepo := mocks.NewMockBusinessRepository(ctrl)

	appConfig := &config.Config{
		MetricsSync: config.MetricsSync{CronSchedule: "0 3 * * *", Enabled: false},
	}

	service := NewBusinessMetricsSyncService(businessRepo, nil, appConfig)

	status := service.Status()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "0 3 * * *", status["cron_schedule"])
	assert.NotContains(t, status, "last_sync_started_at")
}
