package vertical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/log"
)

func storedDairyVertical(version int) *domain.Vertical {
	return &domain.Vertical{
		ID:      "v1",
		Name:    "Lechería",
		Active:  true,
		Version: version,
		Schema: domain.Schema{Variant: &domain.DairySchema{
			Type:      domain.SchemaTypeDairy,
			Unit:      "litros",
			Price:     2.0,
			Inventory: &domain.DairyInventory{Items: []domain.Cow{{ID: "c1", Name: "Lola"}}},
		}},
	}
}

func TestService_AddCow(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(3), nil)

	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 3).
		DoAndReturn(func(verticalID string, schema domain.Schema, expectedVersion int) error {
			dairy, ok := schema.Variant.(*domain.DairySchema)
			assert.True(t, ok)
			assert.Len(t, dairy.Inventory.Items, 2)
			assert.Equal(t, "Nube", dairy.Inventory.Items[1].Name)
			return nil
		})

	service := NewService(verticalRepo)

	cow, err := service.AddCow("v1", "Nube", "ternera nueva")
	assert.NoError(t, err)
	assert.NotEmpty(t, cow.ID)
	assert.True(t, cow.IsInProduction())
}

func TestService_AddCow_RetriesOnVersionConflict(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	// Primer intento: otra escritura gana la carrera
	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(3), nil)
	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 3).
		Return(repository.ErrVersionConflict)

	// Segundo intento: se relee con la versión nueva y la escritura entra
	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(4), nil)
	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 4).
		Return(nil)

	service := NewService(verticalRepo)

	_, err := service.AddCow("v1", "Nube", "")
	assert.NoError(t, err)
}

func TestService_AddCow_GivesUpAfterMaxRetries(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(3), nil).
		Times(maxSchemaRetries)
	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 3).
		Return(repository.ErrVersionConflict).
		Times(maxSchemaRetries)

	service := NewService(verticalRepo)

	_, err := service.AddCow("v1", "Nube", "")
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
}

func TestService_ToggleCow(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(1), nil)

	verticalRepo.EXPECT().
		UpdateSchema("v1", gomock.Any(), 1).
		DoAndReturn(func(verticalID string, schema domain.Schema, expectedVersion int) error {
			dairy := schema.Variant.(*domain.DairySchema)
			assert.False(t, dairy.Inventory.Items[0].IsInProduction())
			return nil
		})

	service := NewService(verticalRepo)

	err := service.ToggleCow("v1", "c1")
	assert.NoError(t, err)
}

func TestService_ToggleCow_NotFound(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(storedDairyVertical(1), nil)

	service := NewService(verticalRepo)

	err := service.ToggleCow("v1", "no-existe")
	assert.ErrorIs(t, err, ErrCowNotFound)
}

func TestService_AddCowOnEggsSchemaFails(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(&domain.Vertical{
			ID:      "v1",
			Version: 1,
			Schema:  domain.Schema{Variant: &domain.EggsSchema{Type: domain.SchemaTypeEggs}},
		}, nil)

	service := NewService(verticalRepo)

	_, err := service.AddCow("v1", "Nube", "")
	assert.ErrorIs(t, err, ErrWrongSchemaType)
}

func TestService_CreateVertical_FromTemplate(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	template := &domain.Vertical{
		ID:         "tpl-dairy",
		IsTemplate: true,
		Schema: domain.Schema{Variant: &domain.DairySchema{
			Type:  domain.SchemaTypeDairy,
			Unit:  "litros",
			Price: 2.0,
			ProductionHistory: []domain.CowProductionRecord{
				{Date: "2025-01-01", TotalLiters: 10},
			},
		}},
	}

	verticalRepo.EXPECT().
		GetVerticalByID("tpl-dairy").
		Return(template, nil)

	verticalRepo.EXPECT().
		CreateVertical(gomock.Any()).
		DoAndReturn(func(v *domain.Vertical) (*domain.Vertical, error) {
			assert.Equal(t, "b1", v.BusinessID)
			assert.False(t, v.IsTemplate)
			assert.True(t, v.Active)
			assert.NotEmpty(t, v.ID)

			dairy, ok := v.Schema.Variant.(*domain.DairySchema)
			assert.True(t, ok)
			// El historial de la plantilla nunca se clona
			assert.Empty(t, dairy.ProductionHistory)
			assert.Equal(t, 2.8, dairy.Price)
			return v, nil
		})

	service := NewService(verticalRepo)

	created, err := service.CreateVertical("b1", &domain.CreateVerticalRequest{
		Name:       "Lechería norte",
		TemplateID: "tpl-dairy",
		Price:      2.8,
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestService_CreateVertical_GenericWithoutTemplate(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	verticalRepo.EXPECT().
		CreateVertical(gomock.Any()).
		DoAndReturn(func(v *domain.Vertical) (*domain.Vertical, error) {
			generic, ok := v.Schema.Variant.(*domain.GenericSchema)
			assert.True(t, ok)
			assert.Equal(t, "kg", generic.Unit)
			assert.Equal(t, 12.0, generic.Price)
			return v, nil
		})

	service := NewService(verticalRepo)

	_, err := service.CreateVertical("b1", &domain.CreateVerticalRequest{
		Name:  "Miel",
		Unit:  "kg",
		Price: 12.0,
	})
	assert.NoError(t, err)
}

func TestService_CowHistory_SortedByDate(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	stored := storedDairyVertical(1)
	dairy := stored.Schema.Variant.(*domain.DairySchema)
	dairy.ProductionHistory = []domain.CowProductionRecord{
		{Date: "2025-08-02", Production: []domain.CowProductionEntry{{ID: "c1", Liters: 12}}, MovementID: "m2"},
		{Date: "2025-08-01", Production: []domain.CowProductionEntry{{ID: "c1", Liters: 10}}, MovementID: "m1"},
		{Date: "2025-08-03", Production: []domain.CowProductionEntry{{ID: "otra", Liters: 7}}},
	}

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(stored, nil)

	service := NewService(verticalRepo)

	history, err := service.CowHistory("v1", "c1")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "2025-08-01", history[0].Date)
	assert.Equal(t, 10.0, history[0].Liters)
	assert.Equal(t, "m1", history[0].MovementID)
	assert.Equal(t, "2025-08-02", history[1].Date)
}

func TestService_CowHistory_SurvivesInventoryRemoval(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verticalRepo := mocks.NewMockVerticalRepository(ctrl)

	// "retirada" ya no está en el inventario pero sus registros perduran.
	stored := storedDairyVertical(1)
	dairy := stored.Schema.Variant.(*domain.DairySchema)
	dairy.ProductionHistory = []domain.CowProductionRecord{
		{Date: "2025-08-01", Production: []domain.CowProductionEntry{{ID: "retirada", Liters: 9}}, MovementID: "m1"},
	}

	verticalRepo.EXPECT().
		GetVerticalByID("v1").
		Return(stored, nil).
		Times(2)

	service := NewService(verticalRepo)

	history, err := service.CowHistory("v1", "retirada")
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, 9.0, history[0].Liters)

	// Una vaca sin rastro ni en inventario ni en historial sigue siendo 404.
	_, err = service.CowHistory("v1", "fantasma")
	assert.ErrorIs(t, err, ErrCowNotFound)
}
