package domain

import "time"

// Vertical es una línea de producción configurable de un negocio (lechería,
// huevos, etc.). Las verticales no se borran físicamente: se desactivan con
// el flag active. Las marcadas is_template sirven como plantilla clonable.
type Vertical struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsTemplate  bool      `json:"is_template"`
	Active      bool      `json:"active"`
	Schema      Schema    `json:"variables_schema"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateVerticalRequest actualiza los metadatos de una vertical. Los campos
// nulos se dejan como están.
type UpdateVerticalRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// CreateVerticalRequest crea una vertical nueva, opcionalmente clonada de
// una plantilla. Si TemplateID viene vacío se crea un esquema genérico con
// los valores indicados.
type CreateVerticalRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TemplateID  string  `json:"template_id"`
	Unit        string  `json:"unit"`
	Estimated   float64 `json:"estimated"`
	Price       float64 `json:"price"`
}

// CowStats son las estadísticas derivadas del historial para una vaca.
type CowStats struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	InProduction   bool    `json:"in_production"`
	TotalLiters    float64 `json:"total_liters"`
	Count          int     `json:"count"`
	AvgProduction  float64 `json:"avg_production"`
	LastProduction float64 `json:"last_production"`
	Trend          Trend   `json:"trend"`
	Comments       string  `json:"comments,omitempty"`
}

// Trend clasifica la evolución reciente de la producción.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// VerticalStats agrega las métricas de lectura de una vertical.
type VerticalStats struct {
	TotalProduction float64    `json:"total_production"`
	TotalRevenue    float64    `json:"total_revenue"`
	AveragePrice    float64    `json:"average_price"`
	CowStats        []CowStats `json:"cow_stats,omitempty"`
}

// CowHistoryEntry es un punto del historial individual de una vaca,
// extraído de los registros agregados y ordenado por fecha ascendente.
type CowHistoryEntry struct {
	Date       string  `json:"date"`
	Liters     float64 `json:"liters"`
	MovementID string  `json:"movement_id,omitempty"`
}
