package entity

import "time"

// Tipos de movimiento de stock (value object conceptual).
const (
	MovementTypeEntry = "ENTRY" // entrada
	MovementTypeExit  = "EXIT"  // salida
)

// StockMovement representa un movimiento de stock (entrada o salida).
// Es inmutable: se crea como efecto de una operación del libro y no existe
// camino de actualización ni borrado. Quantity siempre es positiva; la
// dirección la da Type.
type StockMovement struct {
	ID           string
	ProductID    string
	Type         string // ENTRY, EXIT
	Quantity     int64
	MovementDate time.Time
	CreatedAt    time.Time
}
