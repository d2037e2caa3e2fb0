package movement

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
	"github.com/dumar-app/dumar-api/pkg/log"
	"github.com/dumar-app/dumar-api/pkg/utils"
)

var (
	ErrMovementNotFound = errors.New("movimiento no encontrado")
	ErrVerticalNotFound = errors.New("vertical no encontrada")
	ErrInvalidType      = errors.New("el tipo de movimiento debe ser ingreso o gasto")
	ErrInvalidDate      = errors.New("la fecha debe tener formato YYYY-MM-DD")
)

// maxHistoryRetries limita los reintentos del anexado de historial tras crear
// el movimiento. Si se agotan, el movimiento queda sin entrada de historial y
// la respuesta lo avisa; no hay rollback.
const maxHistoryRetries = 3

type Service interface {
	CreateMovement(businessID string, req *domain.CreateMovementRequest) (*domain.CreateMovementResponse, error)
	GetMovement(movementID string) (*domain.Movement, error)
	ListMovements(businessID string, filter domain.MovementFilter) ([]*domain.Movement, error)
	UpdateMovement(movementID string, req *domain.UpdateMovementRequest) (*domain.Movement, error)
	DeleteMovement(movementID string) error
}

type service struct {
	movementRepo repository.MovementRepository
	verticalRepo repository.VerticalRepository
}

func NewService(movementRepo repository.MovementRepository, verticalRepo repository.VerticalRepository) Service {
	return &service{
		movementRepo: movementRepo,
		verticalRepo: verticalRepo,
	}
}

// CreateMovement reconcilia la entrada, persiste el movimiento y anexa el
// registro de producción al historial de la vertical con escritura CAS.
func (s *service) CreateMovement(businessID string, req *domain.CreateMovementRequest) (*domain.CreateMovementResponse, error) {
	if req.Type != domain.MovementIncome && req.Type != domain.MovementExpense {
		return nil, ErrInvalidType
	}

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	var linkedVertical *domain.Vertical
	if req.VerticalID != "" {
		v, err := s.verticalRepo.GetVerticalByID(req.VerticalID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, ErrVerticalNotFound
		}

		v.Schema = vertical.NormalizeSchema(v.Schema)
		linkedVertical = v
	}

	reconciled := production.Reconcile(linkedVertical, req)

	movement := &domain.Movement{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Date:        req.Date,
		Type:        req.Type,
		Amount:      reconciled.Amount,
		Description: req.Description,
	}

	if req.VerticalID != "" {
		verticalID := req.VerticalID
		movement.VerticalID = &verticalID
	}

	if reconciled.Tracked {
		movement.ProductionData = buildProductionData(linkedVertical, req, reconciled)
	}

	movement, err := s.movementRepo.CreateMovement(movement)
	if err != nil {
		return nil, err
	}

	response := &domain.CreateMovementResponse{
		Movement: movement,
		Warning:  reconciled.Warning,
	}

	if reconciled.Tracked && linkedVertical != nil {
		if err := s.appendHistory(linkedVertical.ID, movement, reconciled); err != nil {
			log.L.WithFields(log.Fields{
				"movement_id": movement.ID,
				"vertical_id": linkedVertical.ID,
				"error":       err.Error(),
			}).Error("El movimiento se guardó pero el historial no pudo anexarse")

			response.HistoryWarning = "El movimiento se guardó pero su registro de producción no pudo anexarse al historial"
		}
	}

	return response, nil
}

func buildProductionData(v *domain.Vertical, req *domain.CreateMovementRequest, reconciled production.ReconcileResult) *domain.ProductionData {
	data := &domain.ProductionData{}

	switch variant := v.Schema.Variant.(type) {
	case *domain.DairySchema:
		data.TotalLiters = reconciled.Quantity
		data.ByAnimal = req.ProductionData.ByAnimal
		data.PricePerLiter = variant.Price
		if req.ProductionData.PricePerLiter > 0 {
			data.PricePerLiter = req.ProductionData.PricePerLiter
		}
	case *domain.EggsSchema:
		data.TotalEggs = int(reconciled.Quantity)
		data.ByType = req.ProductionData.ByType
	}

	return data
}

// appendHistory anexa el registro al historial con lectura-mutación-CAS y
// reintentos acotados.
func (s *service) appendHistory(verticalID string, movement *domain.Movement, reconciled production.ReconcileResult) error {
	var lastErr error

	for attempt := 0; attempt < maxHistoryRetries; attempt++ {
		v, err := s.verticalRepo.GetVerticalByID(verticalID)
		if err != nil {
			return err
		}
		if v == nil {
			return ErrVerticalNotFound
		}

		schema := vertical.NormalizeSchema(v.Schema)

		switch variant := schema.Variant.(type) {
		case *domain.DairySchema:
			variant.ProductionHistory = append(variant.ProductionHistory, domain.CowProductionRecord{
				Date:        movement.Date,
				TotalLiters: reconciled.Quantity,
				Production:  movement.ProductionData.ByAnimal,
				MovementID:  movement.ID,
			})
		case *domain.EggsSchema:
			variant.ProductionHistory = append(variant.ProductionHistory, domain.EggProductionRecord{
				Date:       movement.Date,
				TotalEggs:  int(reconciled.Quantity),
				ByType:     movement.ProductionData.ByType,
				MovementID: movement.ID,
			})
		default:
			return nil
		}

		err = s.verticalRepo.UpdateSchema(verticalID, schema, v.Version)
		if err == nil {
			return nil
		}

		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		lastErr = err
		log.L.WithFields(log.Fields{
			"vertical_id": verticalID,
			"movement_id": movement.ID,
			"attempt":     attempt + 1,
		}).Warn("Conflicto de versión al anexar el historial, reintentando")
	}

	return lastErr
}

func (s *service) GetMovement(movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.GetMovementByID(movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, ErrMovementNotFound
	}

	return movement, nil
}

func (s *service) ListMovements(businessID string, filter domain.MovementFilter) ([]*domain.Movement, error) {
	return s.movementRepo.ListMovementsByBusiness(businessID, filter)
}

// UpdateMovement actualiza los campos financieros del movimiento. El
// historial de producción ya anexado no se reescribe.
func (s *service) UpdateMovement(movementID string, req *domain.UpdateMovementRequest) (*domain.Movement, error) {
	movement, err := s.movementRepo.GetMovementByID(movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, ErrMovementNotFound
	}

	if req.Date != nil {
		if _, err := utils.ParseDate(*req.Date); err != nil {
			return nil, ErrInvalidDate
		}
		movement.Date = *req.Date
	}
	if req.Type != nil {
		if *req.Type != domain.MovementIncome && *req.Type != domain.MovementExpense {
			return nil, ErrInvalidType
		}
		movement.Type = *req.Type
	}
	if req.Amount != nil {
		movement.Amount = *req.Amount
	}
	if req.Description != nil {
		movement.Description = *req.Description
	}
	if req.VerticalID != nil {
		if *req.VerticalID == "" {
			movement.VerticalID = nil
		} else {
			movement.VerticalID = req.VerticalID
		}
	}

	if err := s.movementRepo.UpdateMovement(movement); err != nil {
		return nil, err
	}

	return movement, nil
}

func (s *service) DeleteMovement(movementID string) error {
	movement, err := s.movementRepo.GetMovementByID(movementID)
	if err != nil {
		return err
	}
	if movement == nil {
		return ErrMovementNotFound
	}

	return s.movementRepo.DeleteMovement(movementID)
}
