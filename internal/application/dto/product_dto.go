package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// La cantidad inicial se toma tal cual; no se genera movimiento de apertura.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitOfMeasure    string          `json:"unit_of_measure"`
	QuantityInStock  int64           `json:"quantity_in_stock"`
	MinStockQuantity int64           `json:"min_stock_quantity"`
	MaxStockQuantity int64           `json:"max_stock_quantity"`
	CategoryID       string          `json:"category_id"`
}

// UpdateProductRequest body para PUT /api/products/{id}. Campos opcionales.
type UpdateProductRequest struct {
	Name             *string          `json:"name,omitempty"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty"`
	UnitOfMeasure    *string          `json:"unit_of_measure,omitempty"`
	QuantityInStock  *int64           `json:"quantity_in_stock,omitempty"`
	MinStockQuantity *int64           `json:"min_stock_quantity,omitempty"`
	MaxStockQuantity *int64           `json:"max_stock_quantity,omitempty"`
	CategoryID       *string          `json:"category_id,omitempty"`
}

// CategoryInfo referencia mínima a la categoría dentro de un producto.
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
// Movements solo se adjunta en el detalle por ID.
type ProductResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	UnitPrice        decimal.Decimal    `json:"unit_price"`
	UnitOfMeasure    string             `json:"unit_of_measure"`
	QuantityInStock  int64              `json:"quantity_in_stock"`
	MinStockQuantity int64              `json:"min_stock_quantity"`
	MaxStockQuantity int64              `json:"max_stock_quantity"`
	Category         CategoryInfo       `json:"category"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	Movements        []MovementResponse `json:"movements,omitempty"`
}

// PriceAdjustmentRequest body para POST /api/products/adjust-price.
// Percentage puede ser negativo (descuento); el resultado no se acota a cero.
type PriceAdjustmentRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
}
