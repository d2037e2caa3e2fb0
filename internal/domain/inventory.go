package domain

import "time"

// InventoryItem es un item de inventario de un negocio. A diferencia de las
// verticales, los items sí se borran físicamente.
type InventoryItem struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpsertInventoryItemRequest crea o actualiza un item de inventario.
type UpsertInventoryItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Comments string  `json:"comments"`
}
