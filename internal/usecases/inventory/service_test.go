package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/domain"
)

func TestService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(inventoryRepo)

	inventoryRepo.EXPECT().
		CreateItem(gomock.Any()).
		DoAndReturn(func(item *domain.InventoryItem) (*domain.InventoryItem, error) {
			assert.Equal(t, "b1", item.BusinessID)
			assert.Equal(t, "Alimento balanceado", item.Name)
			assert.NotEmpty(t, item.ID)
			return item, nil
		})

	item, err := service.CreateItem("b1", &domain.UpsertInventoryItemRequest{
		Name:     "Alimento balanceado",
		Quantity: 12,
		Unit:     "bultos",
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(12), item.Quantity)
}

func TestService_CreateItemRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockInventoryRepository(ctrl))

	_, err := service.CreateItem("b1", &domain.UpsertInventoryItemRequest{Quantity: 3})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestService_UpdateItemKeepsFieldsWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(inventoryRepo)

	stored := &domain.InventoryItem{
		ID:         "i1",
		BusinessID: "b1",
		Name:       "Heno",
		Quantity:   40,
		Unit:       "pacas",
		Comments:   "bodega norte",
	}

	inventoryRepo.EXPECT().GetItemByID("i1").Return(stored, nil)
	inventoryRepo.EXPECT().UpdateItem(gomock.Any()).Return(nil)

	// Nombre y unidad vacíos conservan lo guardado; cantidad y comentarios
	// se escriben siempre, incluso vacíos.
	item, err := service.UpdateItem("i1", &domain.UpsertInventoryItemRequest{
		Quantity: 25,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Heno", item.Name)
	assert.Equal(t, "pacas", item.Unit)
	assert.Equal(t, float64(25), item.Quantity)
	assert.Equal(t, "", item.Comments)
}

func TestService_DeleteItemNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(inventoryRepo)

	inventoryRepo.EXPECT().GetItemByID("ghost").Return(nil, nil)

	err := service.DeleteItem("ghost")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
