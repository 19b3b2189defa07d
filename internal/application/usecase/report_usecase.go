package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura derivados del catálogo y del libro de
// movimientos. Todos los reportes (salvo TopMovementProducts, ver abajo) se
// construyen sobre la misma regla de visibilidad que el catálogo: nunca
// puentean la autorización por categoría.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, reportRepo: reportRepo}
}

// visibleFilter devuelve el filtro de categorías del actor (nil = sin filtro).
func visibleFilter(actor auth.Actor) []string {
	if actor.Unrestricted() {
		return nil
	}
	return actor.AllowedCategories
}

// PriceList lista de precios: nombre, precio unitario y categoría de cada
// producto visible.
func (uc *ReportUseCase) PriceList(actor auth.Actor) ([]dto.PriceListItem, error) {
	products, err := uc.productRepo.ListVisible(visibleFilter(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceListItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.PriceListItem{
			ProductName:  p.Name,
			UnitPrice:    p.UnitPrice,
			CategoryName: p.CategoryName,
		})
	}
	return items, nil
}

// StockBalance valorización de stock: cantidad física y valor total
// (cantidad × precio unitario) de cada producto visible.
func (uc *ReportUseCase) StockBalance(actor auth.Actor) ([]dto.StockBalanceItem, error) {
	products, err := uc.productRepo.ListVisible(visibleFilter(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockBalanceItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.StockBalanceItem{
			ProductName:     p.Name,
			QuantityInStock: p.QuantityInStock,
			TotalValue:      p.UnitPrice.Mul(decimal.NewFromInt(p.QuantityInStock)),
		})
	}
	return items, nil
}

// BelowMinStock productos visibles cuya cantidad está por debajo de su mínimo.
func (uc *ReportUseCase) BelowMinStock(actor auth.Actor) ([]dto.BelowMinStockItem, error) {
	products, err := uc.productRepo.ListVisible(visibleFilter(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.BelowMinStockItem, 0)
	for _, p := range products {
		if p.QuantityInStock < p.MinStockQuantity {
			items = append(items, dto.BelowMinStockItem{
				ProductName:      p.Name,
				QuantityInStock:  p.QuantityInStock,
				MinStockQuantity: p.MinStockQuantity,
			})
		}
	}
	return items, nil
}

// ProductCountByCategory conteo de productos visibles agrupado por categoría.
// La suma de los grupos es igual al total de productos visibles para el actor.
func (uc *ReportUseCase) ProductCountByCategory(actor auth.Actor) ([]dto.ProductCountByCategoryItem, error) {
	counts, err := uc.reportRepo.CountProductsByCategory(visibleFilter(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductCountByCategoryItem, 0, len(counts))
	for _, c := range counts {
		items = append(items, dto.ProductCountByCategoryItem{
			CategoryName: c.CategoryName,
			ProductCount: c.ProductCount,
		})
	}
	return items, nil
}

// TopMovementProducts producto con más entradas y producto con más salidas.
// La agregación corre sobre TODOS los movimientos sin filtro de visibilidad:
// comportamiento heredado del sistema original, distinto del resto de reportes
// a propósito. Campos nulos si no existe movimiento del tipo.
func (uc *ReportUseCase) TopMovementProducts() (*dto.TopMovementProductsResponse, error) {
	topEntry, err := uc.reportRepo.TopMovementProduct(entity.MovementTypeEntry)
	if err != nil {
		return nil, err
	}
	topExit, err := uc.reportRepo.TopMovementProduct(entity.MovementTypeExit)
	if err != nil {
		return nil, err
	}
	out := &dto.TopMovementProductsResponse{}
	if topEntry != nil {
		out.TopEntryProduct = &dto.TopMovementProduct{ProductName: topEntry.ProductName, MovementCount: topEntry.MovementCount}
	}
	if topExit != nil {
		out.TopExitProduct = &dto.TopMovementProduct{ProductName: topExit.ProductName, MovementCount: topExit.MovementCount}
	}
	return out, nil
}
