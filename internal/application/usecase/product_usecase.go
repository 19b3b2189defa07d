package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos. Toda operación sobre
// un producto concreto pasa por la regla de autorización por categoría;
// QuantityInStock solo se fija aquí en creación/actualización, el resto lo
// maneja el libro de movimientos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// Create crea un producto. La categoría debe existir y el actor debe poder
// operar sobre ella. La cantidad inicial se toma del request sin generar
// movimiento de apertura.
func (uc *ProductUseCase) Create(actor auth.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := auth.CheckCategoryAccess(actor, category.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		UnitPrice:        in.UnitPrice,
		UnitOfMeasure:    in.UnitOfMeasure,
		QuantityInStock:  in.QuantityInStock,
		MinStockQuantity: in.MinStockQuantity,
		MaxStockQuantity: in.MaxStockQuantity,
		CategoryID:       category.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, category.Name), nil
}

// GetByID obtiene un producto con su historial de movimientos (en orden de
// inserción del almacén). Aplica la regla de autorización sobre la categoría
// del producto antes de devolver nada.
func (uc *ProductUseCase) GetByID(actor auth.Actor, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := auth.CheckCategoryAccess(actor, product.CategoryID); err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}
	out := toProductResponse(product, categoryName)

	movements, err := uc.movementRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.MovementResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			ProductName:  product.Name,
			MovementDate: m.MovementDate,
			Quantity:     m.Quantity,
			Type:         m.Type,
		})
	}
	return out, nil
}

// List lista los productos visibles para el actor, ordenados por nombre
// ascendente: todos si no tiene restricción, o solo los de sus categorías.
func (uc *ProductUseCase) List(actor auth.Actor) ([]dto.ProductResponse, error) {
	var filter []string
	if !actor.Unrestricted() {
		filter = actor.AllowedCategories
	}
	list, err := uc.productRepo.ListVisible(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(&p.Product, p.CategoryName))
	}
	return items, nil
}

// Update actualiza un producto. La autorización se verifica sobre la categoría
// ACTUAL y, si el request mueve el producto de categoría, también sobre la
// NUEVA antes de confirmar el cambio: ambas deben pasar.
func (uc *ProductUseCase) Update(actor auth.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := auth.CheckCategoryAccess(actor, product.CategoryID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.UnitOfMeasure != nil {
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.QuantityInStock != nil {
		product.QuantityInStock = *in.QuantityInStock
	}
	if in.MinStockQuantity != nil {
		product.MinStockQuantity = *in.MinStockQuantity
	}
	if in.MaxStockQuantity != nil {
		product.MaxStockQuantity = *in.MaxStockQuantity
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		newCategory, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if newCategory == nil {
			return nil, domain.ErrNotFound
		}
		if err := auth.CheckCategoryAccess(actor, newCategory.ID); err != nil {
			return nil, err
		}
		product.CategoryID = newCategory.ID
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}
	return toProductResponse(product, categoryName), nil
}

// AdjustAllPrices multiplica el precio de todos los productos por
// (1 + percentage/100) en un único UPDATE set-based (sin leer fila por fila,
// para no pisar escrituras concurrentes). No se acota por categoría; la
// restricción a ADMIN vive en la capa HTTP. Un porcentaje negativo puede
// producir precios negativos: comportamiento heredado, no se corrige aquí.
func (uc *ProductUseCase) AdjustAllPrices(percentage decimal.Decimal) error {
	return uc.productRepo.AdjustAllPrices(percentage)
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		UnitPrice:        p.UnitPrice,
		UnitOfMeasure:    p.UnitOfMeasure,
		QuantityInStock:  p.QuantityInStock,
		MinStockQuantity: p.MinStockQuantity,
		MaxStockQuantity: p.MaxStockQuantity,
		Category:         dto.CategoryInfo{ID: p.CategoryID, Name: categoryName},
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
