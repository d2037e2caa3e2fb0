package vertical

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/repository"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/log"
)

var (
	ErrVerticalNotFound = errors.New("vertical no encontrada")
	ErrTemplateNotFound = errors.New("plantilla no encontrada")
	ErrCowNotFound      = errors.New("vaca no encontrada en el inventario")
	ErrEggTypeNotFound  = errors.New("tipo de huevo no encontrado")
	ErrWrongSchemaType  = errors.New("la operación no aplica al tipo de esquema de la vertical")
)

// maxSchemaRetries limita los reintentos de las escrituras CAS del esquema.
const maxSchemaRetries = 3

type Service interface {
	ListTemplates() ([]*domain.Vertical, error)
	ListByBusiness(businessID string, activeOnly bool) ([]*domain.Vertical, error)
	GetVertical(verticalID string) (*domain.Vertical, error)
	CreateVertical(businessID string, req *domain.CreateVerticalRequest) (*domain.Vertical, error)
	UpdateVertical(verticalID string, req *domain.UpdateVerticalRequest) (*domain.Vertical, error)
	SaveSchema(verticalID string, schema domain.Schema, expectedVersion int) (*domain.Vertical, error)
	AddCow(verticalID, name, notes string) (*domain.Cow, error)
	RemoveCow(verticalID, cowID string) error
	ToggleCow(verticalID, cowID string) error
	UpdateCowComments(verticalID, cowID, comments string) error
	CowHistory(verticalID, cowID string) ([]domain.CowHistoryEntry, error)
	AddEggType(verticalID, name string, price float64, description string) (*domain.EggType, error)
	RemoveEggType(verticalID, typeID string) error
	ToggleEggType(verticalID, typeID string) error
}

type service struct {
	verticalRepo repository.VerticalRepository
}

func NewService(verticalRepo repository.VerticalRepository) Service {
	return &service{
		verticalRepo: verticalRepo,
	}
}

func (s *service) ListTemplates() ([]*domain.Vertical, error) {
	templates, err := s.verticalRepo.ListTemplates()
	if err != nil {
		return nil, err
	}

	for _, template := range templates {
		template.Schema = NormalizeSchema(template.Schema)
	}

	return templates, nil
}

func (s *service) ListByBusiness(businessID string, activeOnly bool) ([]*domain.Vertical, error) {
	verticals, err := s.verticalRepo.ListVerticalsByBusiness(businessID, activeOnly)
	if err != nil {
		return nil, err
	}

	for _, vertical := range verticals {
		vertical.Schema = NormalizeSchema(vertical.Schema)
	}

	return verticals, nil
}

func (s *service) GetVertical(verticalID string) (*domain.Vertical, error) {
	vertical, err := s.verticalRepo.GetVerticalByID(verticalID)
	if err != nil {
		return nil, err
	}
	if vertical == nil {
		return nil, ErrVerticalNotFound
	}

	vertical.Schema = NormalizeSchema(vertical.Schema)
	return vertical, nil
}

// CreateVertical crea una vertical nueva. Si la petición trae template_id se
// clona el esquema de la plantilla (sin su historial); si no, se crea un
// esquema genérico con la unidad y el precio indicados.
func (s *service) CreateVertical(businessID string, req *domain.CreateVerticalRequest) (*domain.Vertical, error) {
	var schema domain.Schema

	if req.TemplateID != "" {
		template, err := s.verticalRepo.GetVerticalByID(req.TemplateID)
		if err != nil {
			return nil, err
		}
		if template == nil || !template.IsTemplate {
			return nil, ErrTemplateNotFound
		}

		schema = cloneTemplateSchema(NormalizeSchema(template.Schema), req)
	} else {
		schema = domain.Schema{Variant: &domain.GenericSchema{
			Type:      string(domain.SchemaTypeGeneric),
			Unit:      req.Unit,
			Price:     req.Price,
			Estimated: req.Estimated,
		}}
	}

	vertical := &domain.Vertical{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		IsTemplate:  false,
		Active:      true,
		Schema:      schema,
	}

	return s.verticalRepo.CreateVertical(vertical)
}

// cloneTemplateSchema copia el esquema de la plantilla aplicando las
// sobreescrituras de la petición. El historial de producción nunca se clona.
func cloneTemplateSchema(schema domain.Schema, req *domain.CreateVerticalRequest) domain.Schema {
	switch variant := schema.Variant.(type) {
	case *domain.DairySchema:
		clone := *variant
		clone.ProductionHistory = nil
		if req.Unit != "" {
			clone.Unit = req.Unit
		}
		if req.Price > 0 {
			clone.Price = req.Price
		}
		return domain.Schema{Variant: &clone}

	case *domain.EggsSchema:
		clone := *variant
		clone.ProductionHistory = nil
		if req.Unit != "" {
			clone.Unit = req.Unit
		}
		if req.Price > 0 {
			clone.Price = req.Price
		}
		return domain.Schema{Variant: &clone}

	case *domain.GenericSchema:
		clone := domain.GenericSchema{
			Type:      variant.Type,
			Unit:      variant.Unit,
			Price:     variant.Price,
			Estimated: variant.Estimated,
		}
		if req.Unit != "" {
			clone.Unit = req.Unit
		}
		if req.Price > 0 {
			clone.Price = req.Price
		}
		if req.Estimated > 0 {
			clone.Estimated = req.Estimated
		}
		return domain.Schema{Variant: &clone}
	}

	return schema
}

func (s *service) UpdateVertical(verticalID string, req *domain.UpdateVerticalRequest) (*domain.Vertical, error) {
	vertical, err := s.verticalRepo.GetVerticalByID(verticalID)
	if err != nil {
		return nil, err
	}
	if vertical == nil {
		return nil, ErrVerticalNotFound
	}

	if req.Name != nil {
		vertical.Name = *req.Name
	}
	if req.Description != nil {
		vertical.Description = *req.Description
	}
	if req.Active != nil {
		vertical.Active = *req.Active
	}

	if err := s.verticalRepo.UpdateVertical(vertical); err != nil {
		return nil, err
	}

	vertical.Schema = NormalizeSchema(vertical.Schema)
	return vertical, nil
}

// SaveSchema persiste el esquema completo del editor con una única escritura
// CAS. Un conflicto de versión se devuelve tal cual para que el cliente
// recargue y reintente.
func (s *service) SaveSchema(verticalID string, schema domain.Schema, expectedVersion int) (*domain.Vertical, error) {
	normalized := NormalizeSchema(schema)

	err := s.verticalRepo.UpdateSchema(verticalID, normalized, expectedVersion)
	if err != nil {
		return nil, err
	}

	return s.GetVertical(verticalID)
}

// mutateSchema aplica una mutación sobre el esquema con reintentos acotados:
// leer, mutar y escribir con CAS hasta maxSchemaRetries veces.
func (s *service) mutateSchema(verticalID string, mutate func(schema domain.Schema) (domain.Schema, error)) error {
	var lastErr error

	for attempt := 0; attempt < maxSchemaRetries; attempt++ {
		vertical, err := s.verticalRepo.GetVerticalByID(verticalID)
		if err != nil {
			return err
		}
		if vertical == nil {
			return ErrVerticalNotFound
		}

		mutated, err := mutate(NormalizeSchema(vertical.Schema))
		if err != nil {
			return err
		}

		err = s.verticalRepo.UpdateSchema(verticalID, mutated, vertical.Version)
		if err == nil {
			return nil
		}

		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		lastErr = err
		log.L.WithFields(log.Fields{
			"vertical_id": verticalID,
			"attempt":     attempt + 1,
		}).Warn("Conflicto de versión al mutar el esquema, reintentando")
	}

	return lastErr
}

func (s *service) AddCow(verticalID, name, notes string) (*domain.Cow, error) {
	cow := domain.Cow{
		ID:           uuid.New().String(),
		Name:         name,
		Notes:        notes,
		InProduction: domain.BoolPtr(true),
	}

	err := s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		dairy, ok := schema.Variant.(*domain.DairySchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		dairy.Inventory.Items = append(dairy.Inventory.Items, cow)
		return schema, nil
	})
	if err != nil {
		return nil, err
	}

	return &cow, nil
}

// RemoveCow quita una vaca del inventario. Sus entradas pasadas en el
// historial se conservan.
func (s *service) RemoveCow(verticalID, cowID string) error {
	return s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		dairy, ok := schema.Variant.(*domain.DairySchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		items := make([]domain.Cow, 0, len(dairy.Inventory.Items))
		found := false
		for _, cow := range dairy.Inventory.Items {
			if cow.ID == cowID {
				found = true
				continue
			}
			items = append(items, cow)
		}

		if !found {
			return schema, ErrCowNotFound
		}

		dairy.Inventory.Items = items
		return schema, nil
	})
}

// ToggleCow alterna el flag inProduction de una vaca sin sacarla del
// inventario.
func (s *service) ToggleCow(verticalID, cowID string) error {
	return s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		dairy, ok := schema.Variant.(*domain.DairySchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		for i := range dairy.Inventory.Items {
			if dairy.Inventory.Items[i].ID == cowID {
				toggled := !dairy.Inventory.Items[i].IsInProduction()
				dairy.Inventory.Items[i].InProduction = domain.BoolPtr(toggled)
				return schema, nil
			}
		}

		return schema, ErrCowNotFound
	})
}

func (s *service) UpdateCowComments(verticalID, cowID, comments string) error {
	return s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		dairy, ok := schema.Variant.(*domain.DairySchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		for i := range dairy.Inventory.Items {
			if dairy.Inventory.Items[i].ID == cowID {
				dairy.Inventory.Items[i].Comments = comments
				return schema, nil
			}
		}

		return schema, ErrCowNotFound
	})
}

// CowHistory extrae del historial agregado los registros de una vaca,
// ordenados por fecha ascendente.
func (s *service) CowHistory(verticalID, cowID string) ([]domain.CowHistoryEntry, error) {
	vertical, err := s.GetVertical(verticalID)
	if err != nil {
		return nil, err
	}

	dairy, ok := vertical.Schema.Variant.(*domain.DairySchema)
	if !ok {
		return nil, ErrWrongSchemaType
	}

	// Quitar una vaca del inventario no borra sus registros pasados, así que
	// la existencia se comprueba contra inventario e historial.
	cowExists := false
	if dairy.Inventory != nil {
		for _, cow := range dairy.Inventory.Items {
			if cow.ID == cowID {
				cowExists = true
				break
			}
		}
	}

	history := make([]domain.CowHistoryEntry, 0)
	for _, record := range dairy.ProductionHistory {
		for _, entry := range record.Production {
			if entry.ID == cowID {
				cowExists = true
				history = append(history, domain.CowHistoryEntry{
					Date:       record.Date,
					Liters:     entry.Liters,
					MovementID: record.MovementID,
				})
			}
		}
	}

	if !cowExists {
		return nil, ErrCowNotFound
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date < history[j].Date
	})

	return history, nil
}

func (s *service) AddEggType(verticalID, name string, price float64, description string) (*domain.EggType, error) {
	eggType := domain.EggType{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       price,
		Active:      true,
		Description: description,
	}

	err := s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		eggs, ok := schema.Variant.(*domain.EggsSchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		eggs.ProductionTypes = append(eggs.ProductionTypes, eggType)
		return schema, nil
	})
	if err != nil {
		return nil, err
	}

	return &eggType, nil
}

// RemoveEggType quita un tipo de la configuración. El historial por tipo ya
// registrado no se reescribe.
func (s *service) RemoveEggType(verticalID, typeID string) error {
	return s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		eggs, ok := schema.Variant.(*domain.EggsSchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		types := make([]domain.EggType, 0, len(eggs.ProductionTypes))
		found := false
		for _, eggType := range eggs.ProductionTypes {
			if eggType.ID == typeID {
				found = true
				continue
			}
			types = append(types, eggType)
		}

		if !found {
			return schema, ErrEggTypeNotFound
		}

		eggs.ProductionTypes = types
		return schema, nil
	})
}

// ToggleEggType alterna el flag active de un tipo de huevo sin quitarlo de la
// configuración.
func (s *service) ToggleEggType(verticalID, typeID string) error {
	return s.mutateSchema(verticalID, func(schema domain.Schema) (domain.Schema, error) {
		eggs, ok := schema.Variant.(*domain.EggsSchema)
		if !ok {
			return schema, ErrWrongSchemaType
		}

		for i := range eggs.ProductionTypes {
			if eggs.ProductionTypes[i].ID == typeID {
				eggs.ProductionTypes[i].Active = !eggs.ProductionTypes[i].Active
				return schema, nil
			}
		}

		return schema, ErrEggTypeNotFound
	})
}
