package domain

import "time"

// Tipos de movimiento financiero.
const (
	MovementIncome  = "ingreso"
	MovementExpense = "gasto"
)

// ProductionData es la carga de producción registrada al crear un movimiento
// vinculado a una vertical lechera o de huevos.
type ProductionData struct {
	TotalLiters   float64              `json:"total_liters,omitempty"`
	PricePerLiter float64              `json:"price_per_liter,omitempty"`
	ByAnimal      []CowProductionEntry `json:"by_animal,omitempty"`
	TotalEggs     int                  `json:"total_eggs,omitempty"`
	ByType        []EggTypeProduction  `json:"by_type,omitempty"`
}

// Movement es un evento financiero fechado de un negocio. Referencia a la
// vertical por id pero no la posee.
type Movement struct {
	ID             string          `json:"id"`
	BusinessID     string          `json:"business_id"`
	VerticalID     *string         `json:"vertical_id"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Amount         float64         `json:"amount"`
	Description    string          `json:"description,omitempty"`
	ProductionData *ProductionData `json:"production_data,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateMovementRequest es la entrada para registrar un movimiento. Si
// VerticalID viene informado y el tipo es ingreso, Quantity y el desglose de
// producción se reconcilian contra el esquema de la vertical; si no, se usa
// Amount tal cual.
type CreateMovementRequest struct {
	VerticalID     string          `json:"vertical_id"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Amount         float64         `json:"amount"`
	Quantity       float64         `json:"quantity"`
	Description    string          `json:"description"`
	ProductionData *ProductionData `json:"production_data"`
}

// CreateMovementResponse devuelve el movimiento creado junto con los avisos
// no bloqueantes de la reconciliación y del anexado de historial.
type CreateMovementResponse struct {
	Movement       *Movement `json:"movement"`
	Warning        string    `json:"warning,omitempty"`
	HistoryWarning string    `json:"history_warning,omitempty"`
}

// UpdateMovementRequest actualiza un movimiento existente. El historial de
// producción no se reescribe: los registros pasados son sólo-anexar.
type UpdateMovementRequest struct {
	Date        *string  `json:"date"`
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	VerticalID  *string  `json:"vertical_id"`
}

// MovementFilter acota listados de movimientos.
type MovementFilter struct {
	Type      string
	StartDate string
	EndDate   string
	MinAmount *float64
	MaxAmount *float64
	Limit     uint64
}
