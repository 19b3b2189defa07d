package repository

import "github.com/tu-usuario/stock-control-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos de
// stock (DIP). Solo creación y lectura: los movimientos son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve los movimientos de un producto en orden de inserción.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
