package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// ProductWithCategory producto junto al nombre de su categoría (join de lectura).
type ProductWithCategory struct {
	entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido
// dentro de una transacción del TxRunner.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	// ListVisible lista productos con el nombre de su categoría, ordenados por
	// nombre ascendente. categoryIDs vacío o nil = todos (actor sin restricción).
	ListVisible(categoryIDs []string) ([]ProductWithCategory, error)
	CountByCategory(categoryID string) (int64, error)
	// AdjustAllPrices multiplica el precio de todos los productos por
	// (1 + percentage/100) en un único UPDATE set-based.
	AdjustAllPrices(percentage decimal.Decimal) error
}
