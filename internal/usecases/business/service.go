package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/internal/usecases/production"
	"github.com/dumar-app/dumar-api/internal/usecases/vertical"
	"github.com/dumar-app/dumar-api/pkg/utils"
)

var (
	ErrBusinessNotFound = errors.New("negocio no encontrado")
	ErrNotOwner         = errors.New("el negocio pertenece a otro usuario")
	ErrMissingName      = errors.New("el nombre del negocio es obligatorio")
)

type Service interface {
	CreateBusiness(ownerID string, req *domain.CreateBusinessRequest) (*domain.Business, error)
	GetBusiness(businessID string) (*domain.Business, error)
	ListBusinesses(ownerID string) ([]*domain.Business, error)
	UpdateBusiness(businessID string, req *domain.UpdateBusinessRequest) (*domain.Business, error)
	DeleteBusiness(businessID string) error
	// CheckOwnership valida que el negocio exista y pertenezca al usuario.
	CheckOwnership(businessID, ownerID string) (*domain.Business, error)
	GetMetrics(businessID string) (*domain.BusinessMetrics, error)
	RecomputeMetrics(businessID string) (*domain.BusinessMetrics, error)
}

type service struct {
	businessRepo repository.BusinessRepository
	movementRepo repository.MovementRepository
	verticalRepo repository.VerticalRepository
	metricsRepo  repository.BusinessMetricsRepository
}

func NewService(
	businessRepo repository.BusinessRepository,
	movementRepo repository.MovementRepository,
	verticalRepo repository.VerticalRepository,
	metricsRepo repository.BusinessMetricsRepository,
) Service {
	return &service{
		businessRepo: businessRepo,
		movementRepo: movementRepo,
		verticalRepo: verticalRepo,
		metricsRepo:  metricsRepo,
	}
}

func (s *service) CreateBusiness(ownerID string, req *domain.CreateBusinessRequest) (*domain.Business, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	business := &domain.Business{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	return s.businessRepo.CreateBusiness(business)
}

func (s *service) GetBusiness(businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.GetBusinessByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	return business, nil
}

func (s *service) ListBusinesses(ownerID string) ([]*domain.Business, error) {
	return s.businessRepo.ListBusinessesByOwner(ownerID)
}

func (s *service) UpdateBusiness(businessID string, req *domain.UpdateBusinessRequest) (*domain.Business, error) {
	business, err := s.GetBusiness(businessID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Type != nil {
		business.Type = *req.Type
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.ImageURL != nil {
		business.ImageURL = *req.ImageURL
	}

	if err := s.businessRepo.UpdateBusiness(business); err != nil {
		return nil, err
	}

	return business, nil
}

func (s *service) DeleteBusiness(businessID string) error {
	if _, err := s.GetBusiness(businessID); err != nil {
		return err
	}

	return s.businessRepo.DeleteBusiness(businessID)
}

func (s *service) CheckOwnership(businessID, ownerID string) (*domain.Business, error) {
	business, err := s.GetBusiness(businessID)
	if err != nil {
		return nil, err
	}

	if business.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return business, nil
}

// GetMetrics devuelve la foto persistida; si aún no existe se calcula en el
// momento.
func (s *service) GetMetrics(businessID string) (*domain.BusinessMetrics, error) {
	metrics, err := s.metricsRepo.GetMetricsByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	if metrics == nil {
		return s.RecomputeMetrics(businessID)
	}

	return metrics, nil
}

// RecomputeMetrics recalcula los totales del negocio a partir de sus
// movimientos y del historial de producción de sus verticales, y persiste la
// foto resultante.
func (s *service) RecomputeMetrics(businessID string) (*domain.BusinessMetrics, error) {
	if _, err := s.GetBusiness(businessID); err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.ListMovementsByBusiness(businessID, domain.MovementFilter{})
	if err != nil {
		return nil, err
	}

	metrics := &domain.BusinessMetrics{
		BusinessID:    businessID,
		MovementCount: len(movements),
		ComputedAt:    time.Now(),
	}

	for _, movement := range movements {
		switch movement.Type {
		case domain.MovementIncome:
			metrics.TotalIncome += movement.Amount
		case domain.MovementExpense:
			metrics.TotalExpense += movement.Amount
		}
	}

	metrics.TotalIncome = utils.RoundWithTwoDecimalPlace(metrics.TotalIncome)
	metrics.TotalExpense = utils.RoundWithTwoDecimalPlace(metrics.TotalExpense)
	metrics.Balance = utils.RoundWithTwoDecimalPlace(metrics.TotalIncome - metrics.TotalExpense)

	verticals, err := s.verticalRepo.ListVerticalsByBusiness(businessID, false)
	if err != nil {
		return nil, err
	}

	var totalProduction float64
	for _, v := range verticals {
		v.Schema = vertical.NormalizeSchema(v.Schema)
		stats := production.ComputeStats(v, nil)
		totalProduction += stats.TotalProduction
	}
	metrics.TotalProduction = utils.RoundWithTwoDecimalPlace(totalProduction)

	if err := s.metricsRepo.UpsertMetrics(metrics); err != nil {
		return nil, err
	}

	return metrics, nil
}
