package dto

import "github.com/shopspring/decimal"

// PriceListItem línea del reporte de lista de precios.
type PriceListItem struct {
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CategoryName string          `json:"category_name"`
}

// StockBalanceItem línea del reporte de valorización de stock.
// TotalValue = QuantityInStock × UnitPrice (decimal, sin redondeo extra).
type StockBalanceItem struct {
	ProductName     string          `json:"product_name"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	TotalValue      decimal.Decimal `json:"total_value"`
}

// BelowMinStockItem producto por debajo de su stock mínimo.
type BelowMinStockItem struct {
	ProductName      string `json:"product_name"`
	QuantityInStock  int64  `json:"quantity_in_stock"`
	MinStockQuantity int64  `json:"min_stock_quantity"`
}

// ProductCountByCategoryItem conteo de productos visibles por categoría.
type ProductCountByCategoryItem struct {
	CategoryName string `json:"category_name"`
	ProductCount int64  `json:"product_count"`
}

// TopMovementProduct producto con más movimientos de un tipo.
type TopMovementProduct struct {
	ProductName   string `json:"product_name"`
	MovementCount int64  `json:"movement_count"`
}

// TopMovementProductsResponse respuesta de GET /api/reports/top-movement-products.
// Los campos son nulos cuando no existe ningún movimiento del tipo.
type TopMovementProductsResponse struct {
	TopEntryProduct *TopMovementProduct `json:"top_entry_product"`
	TopExitProduct  *TopMovementProduct `json:"top_exit_product"`
}
