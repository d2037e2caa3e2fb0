package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/log"
)

func newServiceWithMocks(ctrl *gomock.Controller) (Service, *mocks.MockBusinessRepository, *mocks.MockMovementRepository, *mocks.MockVerticalRepository, *mocks.MockBusinessMetricsRepository) {
	businessRepo := mocks.NewMockBusinessRepository(ctrl)
	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)
	metricsRepo := mocks.NewMockBusinessMetricsRepository(ctrl)

	return NewService(businessRepo, movementRepo, verticalRepo, metricsRepo),
		businessRepo, movementRepo, verticalRepo, metricsRepo
}

func TestService_CheckOwnership(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, businessRepo, _, _, _ := newServiceWithMocks(ctrl)

	stored := &domain.Business{ID: "b1", OwnerID: "u1", Name: "Finca Dumar"}

	businessRepo.EXPECT().GetBusinessByID("b1").Return(stored, nil).Times(2)

	business, err := service.CheckOwnership("b1", "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Finca Dumar", business.Name)

	_, err = service.CheckOwnership("b1", "u2")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestService_CreateBusiness_RequiresName(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	_, err := service.CreateBusiness("u1", &domain.CreateBusinessRequest{})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestService_RecomputeMetrics(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, businessRepo, movementRepo, verticalRepo, metricsRepo := newServiceWithMocks(ctrl)

	businessRepo.EXPECT().
		GetBusinessByID("b1").
		Return(&domain.Business{ID: "b1", OwnerID: "u1"}, nil)

	movementRepo.EXPECT().
		ListMovementsByBusiness("b1", domain.MovementFilter{}).
		Return([]*domain.Movement{
			{Type: domain.MovementIncome, Amount: 100},
			{Type: domain.MovementIncome, Amount: 50},
			{Type: domain.MovementExpense, Amount: 30},
		}, nil)

	verticalRepo.EXPECT().
		ListVerticalsByBusiness("b1", false).
		Return([]*domain.Vertical{
			{
				ID: "v1",
				Schema: domain.Schema{Variant: &domain.DairySchema{
					Type: domain.SchemaTypeDairy,
					ProductionHistory: []domain.CowProductionRecord{
						{Date: "2025-08-01", TotalLiters: 40},
						{Date: "2025-08-02", TotalLiters: 35},
					},
				}},
			},
			{
				ID: "v2",
				Schema: domain.Schema{Variant: &domain.EggsSchema{
					Type: domain.SchemaTypeEggs,
					ProductionHistory: []domain.EggProductionRecord{
						{Date: "2025-08-01", TotalEggs: 100},
					},
				}},
			},
		}, nil)

	metricsRepo.EXPECT().
		UpsertMetrics(gomock.Any()).
		DoAndReturn(func(m *domain.BusinessMetrics) error {
			assert.Equal(t, 150.0, m.TotalIncome)
			assert.Equal(t, 30.0, m.TotalExpense)
			assert.Equal(t, 120.0, m.Balance)
			assert.Equal(t, 175.0, m.TotalProduction)
			assert.Equal(t, 3, m.MovementCount)
			return nil
		})

	metrics, err := service.RecomputeMetrics("b1")
	assert.NoError(t, err)
	assert.Equal(t, 120.0, metrics.Balance)
}

func TestService_GetMetrics_ComputesWhenMissing(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, businessRepo, movementRepo, verticalRepo, metricsRepo := newServiceWithMocks(ctrl)

	metricsRepo.EXPECT().GetMetricsByBusiness("b1").Return(nil, nil)
	businessRepo.EXPECT().GetBusinessByID("b1").Return(&domain.Business{ID: "b1"}, nil)
	movementRepo.EXPECT().ListMovementsByBusiness("b1", domain.MovementFilter{}).Return(nil, nil)
	verticalRepo.EXPECT().ListVerticalsByBusiness("b1", false).Return(nil, nil)
	metricsRepo.EXPECT().UpsertMetrics(gomock.Any()).Return(nil)

	metrics, err := service.GetMetrics("b1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, metrics.Balance)
	assert.Equal(t, 0, metrics.MovementCount)
}
