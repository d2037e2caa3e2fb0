package production

import (
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
)

var ErrVerticalNotFound = errors.New("vertical no encontrada")

// PreviewResponse es la respuesta del preview de una entrada de producción:
// la reconciliación más, para huevos, el reparto automático del total.
type PreviewResponse struct {
	ReconcileResult
	Distribution []domain.EggTypeProduction `json:"distribution,omitempty"`
}

type Service interface {
	Stats(verticalID string) (*domain.VerticalStats, error)
	Records(verticalID string, filter domain.MovementFilter) ([]*domain.Movement, error)
	Preview(verticalID string, req *domain.CreateMovementRequest) (*PreviewResponse, error)
}

type service struct {
	verticalRepo repository.VerticalRepository
	movementRepo repository.MovementRepository
}

func NewService(verticalRepo repository.VerticalRepository, movementRepo repository.MovementRepository) Service {
	return &service{
		verticalRepo: verticalRepo,
		movementRepo: movementRepo,
	}
}

func (s *service) Stats(verticalID string) (*domain.VerticalStats, error) {
	v, err := s.getVertical(verticalID)
	if err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.ListMovementsByVertical(verticalID)
	if err != nil {
		return nil, err
	}

	return ComputeStats(v, movements), nil
}

// Records lista los movimientos de producción de una vertical aplicando los
// filtros de fecha e importe en memoria.
func (s *service) Records(verticalID string, filter domain.MovementFilter) ([]*domain.Movement, error) {
	if _, err := s.getVertical(verticalID); err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.ListMovementsByVertical(verticalID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Movement, 0, len(movements))
	for _, movement := range movements {
		if filter.Type != "" && movement.Type != filter.Type {
			continue
		}
		if filter.StartDate != "" && movement.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && movement.Date > filter.EndDate {
			continue
		}
		if filter.MinAmount != nil && movement.Amount < *filter.MinAmount {
			continue
		}
		if filter.MaxAmount != nil && movement.Amount > *filter.MaxAmount {
			continue
		}

		filtered = append(filtered, movement)
	}

	return filtered, nil
}

// Preview ejecuta la reconciliación sin persistir nada. Para verticales de
// huevos incluye además el reparto automático del total entre tipos activos.
func (s *service) Preview(verticalID string, req *domain.CreateMovementRequest) (*PreviewResponse, error) {
	var v *domain.Vertical
	var err error

	if verticalID != "" {
		v, err = s.getVertical(verticalID)
		if err != nil {
			return nil, err
		}
	}

	preview := &PreviewResponse{
		ReconcileResult: Reconcile(v, req),
	}

	if v != nil {
		if eggs, ok := v.Schema.Variant.(*domain.EggsSchema); ok && req.Quantity > 0 {
			preview.Distribution = DistributeEvenly(int(req.Quantity), eggs.ProductionTypes)
		}
	}

	return preview, nil
}

func (s *service) getVertical(verticalID string) (*domain.Vertical, error) {
	v, err := s.verticalRepo.GetVerticalByID(verticalID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVerticalNotFound
	}

	v.Schema = vertical.NormalizeSchema(v.Schema)
	return v, nil
}
