package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// QuantityInStock solo cambia a través del libro de movimientos (StockLedger),
// nunca de forma directa salvo en la creación/actualización del catálogo.
type Product struct {
	ID               string
	Name             string
	UnitPrice        decimal.Decimal // precio unitario de venta
	UnitOfMeasure    string
	QuantityInStock  int64
	MinStockQuantity int64 // umbral de alerta por debajo
	MaxStockQuantity int64 // umbral de alerta por encima
	CategoryID       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
