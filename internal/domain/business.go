package domain

import "time"

// Business es un negocio de un usuario. Toda vertical, movimiento e item de
// inventario pertenece a exactamente un negocio.
type Business struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBusinessRequest da de alta un negocio del usuario autenticado.
type CreateBusinessRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateBusinessRequest actualiza un negocio; los campos nulos no cambian.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// BusinessMetrics es la foto nocturna de métricas por negocio que alimenta
// el panel. La calcula el agendador a partir de movimientos y verticales.
type BusinessMetrics struct {
	BusinessID      string    `json:"business_id"`
	TotalIncome     float64   `json:"total_income"`
	TotalExpense    float64   `json:"total_expense"`
	Balance         float64   `json:"balance"`
	TotalProduction float64   `json:"total_production"`
	MovementCount   int       `json:"movement_count"`
	ComputedAt      time.Time `json:"computed_at"`
}
