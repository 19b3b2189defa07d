package repository

// CategoryProductCount conteo de productos por categoría.
type CategoryProductCount struct {
	CategoryName string
	ProductCount int64
}

// TopMovementProduct producto con más movimientos de un tipo dado.
type TopMovementProduct struct {
	ProductName   string
	MovementCount int64
}

// ReportRepository consultas agregadas de solo lectura para reportes (DIP).
type ReportRepository interface {
	// CountProductsByCategory agrupa el conteo de productos visibles por nombre
	// de categoría. categoryIDs vacío o nil = sin filtro de visibilidad.
	CountProductsByCategory(categoryIDs []string) ([]CategoryProductCount, error)
	// TopMovementProduct devuelve el producto con más movimientos del tipo dado
	// sobre TODOS los movimientos (sin filtro de visibilidad; comportamiento del
	// sistema original). Empates resueltos por nombre ascendente. nil si no hay
	// movimientos.
	TopMovementProduct(movementType string) (*TopMovementProduct, error)
}
