package dto

import "time"

// RegisterMovementRequest body para POST /api/stock-movements/{entry,exit}.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// MovementResponse resultado de un movimiento registrado (o línea del historial).
// Warning solo aparece cuando el movimiento cruzó un umbral min/max.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	MovementDate time.Time `json:"movement_date"`
	Quantity     int64     `json:"quantity"`
	Type         string    `json:"type"`
	Warning      string    `json:"warning,omitempty"`
}
