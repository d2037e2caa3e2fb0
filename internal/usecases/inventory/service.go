package inventory

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
)

var (
	ErrItemNotFound = errors.New("item de inventario no encontrado")
	ErrMissingName  = errors.New("el nombre del item es obligatorio")
)

type Service interface {
	CreateItem(businessID string, req *domain.UpsertInventoryItemRequest) (*domain.InventoryItem, error)
	GetItem(itemID string) (*domain.InventoryItem, error)
	ListItems(businessID string) ([]*domain.InventoryItem, error)
	UpdateItem(itemID string, req *domain.UpsertInventoryItemRequest) (*domain.InventoryItem, error)
	DeleteItem(itemID string) error
}

type service struct {
	inventoryRepo repository.InventoryRepository
}

func NewService(inventoryRepo repository.InventoryRepository) Service {
	return &service{
		inventoryRepo: inventoryRepo,
	}
}

func (s *service) CreateItem(businessID string, req *domain.UpsertInventoryItemRequest) (*domain.InventoryItem, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	item := &domain.InventoryItem{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Comments:   req.Comments,
	}

	return s.inventoryRepo.CreateItem(item)
}

func (s *service) GetItem(itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

func (s *service) ListItems(businessID string) ([]*domain.InventoryItem, error) {
	return s.inventoryRepo.ListItemsByBusiness(businessID)
}

func (s *service) UpdateItem(itemID string, req *domain.UpsertInventoryItemRequest) (*domain.InventoryItem, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	item.Quantity = req.Quantity
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	item.Comments = req.Comments

	if err := s.inventoryRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem borra el item físicamente; el inventario no guarda historial.
func (s *service) DeleteItem(itemID string) error {
	if _, err := s.GetItem(itemID); err != nil {
		return err
	}

	return s.inventoryRepo.DeleteItem(itemID)
}
