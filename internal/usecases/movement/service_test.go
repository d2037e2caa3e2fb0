package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/log"
)

func trackedDairyVertical(version int) *domain.Vertical {
	return &domain.Vertical{
		ID:      "v1",
		Version: version,
		Schema: domain.Schema{Variant: &domain.DairySchema{
			Type:  domain.SchemaTypeDairy,
			Unit:  "litros",
			Price: 2.0,
			Inventory: &domain.DairyInventory{Items: []domain.Cow{
				{ID: "c1", Name: "Lola"},
				{ID: "c2", Name: "Mora"},
			}},
		}},
	}
}

func TestService_CreateMovement_TrackedDairy(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	// Lectura para reconciliar y lectura para anexar historial
	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(trackedDairyVertical(2), nil).
		Times(2)

	movementRepo.EXPECT().
		CreateMovement(gomock.Any()).
		DoAndReturn(func(m *domain.Movement) (*domain.Movement, error) {
			assert.Equal(t, "b1", m.BusinessID)
			assert.Equal(t, domain.MovementIncome, m.Type)
			// importe = suma por vaca × precio del esquema
			assert.Equal(t, 30.0, m.Amount)
			assert.NotNil(t, m.ProductionData)
			assert.Equal(t, 15.0, m.ProductionData.TotalLiters)
			return m, nil
		})

	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 2).
		DoAndReturn(func(verticalID string, schema domain.Schema, expectedVersion int) error {
			dairy := schema.Variant.(*domain.DairySchema)
			assert.Len(t, dairy.ProductionHistory, 1)

			record := dairy.ProductionHistory[0]
			assert.Equal(t, "2025-08-15", record.Date)
			assert.Equal(t, 15.0, record.TotalLiters)
			assert.NotEmpty(t, record.MovementID)
			assert.Len(t, record.Production, 2)
			return nil
		})

	service := NewService(movementRepo, verticalRepo)

	response, err := service.CreateMovement("b1", &domain.CreateMovementRequest{
		VerticalID: "v1",
		Date:       "2025-08-15",
		Type:       domain.MovementIncome,
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 10},
				{ID: "c2", Name: "Mora", Liters: 5},
			},
		},
	})

	assert.NoError(t, err)
	assert.Empty(t, response.Warning)
	assert.Empty(t, response.HistoryWarning)
	assert.Equal(t, 30.0, response.Movement.Amount)
}

func TestService_CreateMovement_HistoryWarningAfterRetries(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(trackedDairyVertical(2), nil).
		Times(1 + maxHistoryRetries)

	movementRepo.EXPECT().
		CreateMovement(gomock.Any()).
		DoAndReturn(func(m *domain.Movement) (*domain.Movement, error) {
			return m, nil
		})

	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 2).
		Return(repository.ErrVersionConflict).
		Times(maxHistoryRetries)

	service := NewService(movementRepo, verticalRepo)

	response, err := service.CreateMovement("b1", &domain.CreateMovementRequest{
		VerticalID: "v1",
		Date:       "2025-08-15",
		Type:       domain.MovementIncome,
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{{ID: "c1", Name: "Lola", Liters: 10}},
		},
	})

	// El movimiento queda guardado y la respuesta avisa de la inconsistencia
	assert.NoError(t, err)
	assert.NotNil(t, response.Movement)
	assert.NotEmpty(t, response.HistoryWarning)
}

func TestService_CreateMovement_MismatchWarningDoesNotBlock(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(trackedDairyVertical(2), nil).
		Times(2)

	movementRepo.EXPECT().
		CreateMovement(gomock.Any()).
		DoAndReturn(func(m *domain.Movement) (*domain.Movement, error) {
			return m, nil
		})

	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 2).
		Return(nil)

	service := NewService(movementRepo, verticalRepo)

	response, err := service.CreateMovement("b1", &domain.CreateMovementRequest{
		VerticalID: "v1",
		Date:       "2025-08-15",
		Type:       domain.MovementIncome,
		Quantity:   20, // no cuadra con la suma por vaca (15)
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 10},
				{ID: "c2", Name: "Mora", Liters: 5},
			},
		},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Warning)
	assert.Equal(t, 15.0, response.Movement.ProductionData.TotalLiters)
}

func TestService_CreateMovement_ExpenseSkipsHistory(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(trackedDairyVertical(2), nil)

	movementRepo.EXPECT().
		CreateMovement(gomock.Any()).
		DoAndReturn(func(m *domain.Movement) (*domain.Movement, error) {
			assert.Equal(t, 80.0, m.Amount)
			assert.Nil(t, m.ProductionData)
			return m, nil
		})

	service := NewService(movementRepo, verticalRepo)

	response, err := service.CreateMovement("b1", &domain.CreateMovementRequest{
		VerticalID: "v1",
		Date:       "2025-08-15",
		Type:       domain.MovementExpense,
		Amount:     80,
	})

	assert.NoError(t, err)
	assert.Empty(t, response.Warning)
	assert.Empty(t, response.HistoryWarning)
}

func TestService_CreateMovement_InvalidInput(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	service := NewService(movementRepo, verticalRepo)

	_, err := service.CreateMovement("b1", &domain.CreateMovementRequest{
		Date: "2025-08-15",
		Type: "prestamo",
	})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = service.CreateMovement("b1", &domain.CreateMovementRequest{
		Date: "15/08/2025",
		Type: domain.MovementIncome,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_UpdateMovement(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	stored := &domain.Movement{
		ID:         "m1",
		BusinessID: "b1",
		Date:       "2025-08-15",
		Type:       domain.MovementIncome,
		Amount:     30,
	}

	movementRepo.EXPECT().
		GetMovementByID("m1").
		Return(stored, nil)

	movementRepo.EXPECT().
		UpdateMovement(gomock.Any()).
		DoAndReturn(func(m *domain.Movement) error {
			assert.Equal(t, 45.0, m.Amount)
			assert.Equal(t, "venta de leche", m.Description)
			// Los campos no informados no cambian
			assert.Equal(t, "2025-08-15", m.Date)
			return nil
		})

	service := NewService(movementRepo, verticalRepo)

	amount := 45.0
	description := "venta de leche"
	updated, err := service.UpdateMovement("m1", &domain.UpdateMovementRequest{
		Amount:      &amount,
		Description: &description,
	})

	assert.NoError(t, err)
	assert.Equal(t, 45.0, updated.Amount)
}

func TestService_DeleteMovement_NotFound(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movementRepo := mocks.NewMockMovementRepository(ctrl)
	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	movementRepo.EXPECT().
		GetMovementByID("no-existe").
		Return(nil, nil)

	service := NewService(movementRepo, verticalRepo)

	err := service.DeleteMovement("no-existe")
	assert.ErrorIs(t, err, ErrMovementNotFound)
}
