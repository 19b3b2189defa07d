package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// Avisos no fatales por cruce de umbral. El movimiento se registra igual.
const (
	WarningAboveMax = "Warning: Stock quantity is now above the maximum defined level."
	WarningBelowMin = "Warning: Stock quantity is now below the minimum defined level."
)

// StockLedgerUseCase registra movimientos de stock (ENTRY/EXIT) de forma
// transaccional: bloqueo de fila (SELECT FOR UPDATE), mutación de cantidad y
// registro inmutable del movimiento en la misma transacción.
type StockLedgerUseCase struct {
	txRunner TxRunner
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner}
}

// RegisterEntry registra una entrada: newQty = oldQty + quantity.
// Si la cantidad resultante supera MaxStockQuantity la respuesta lleva un
// aviso no fatal; superar el techo es informativo, no un error.
func (uc *StockLedgerUseCase) RegisterEntry(ctx context.Context, actor auth.Actor, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(ctx, actor, in, entity.MovementTypeEntry)
}

// RegisterExit registra una salida: newQty = oldQty - quantity.
// Falla con ErrInsufficientStock si quantity > oldQty (no se escribe nada).
// Si la cantidad resultante cae bajo MinStockQuantity la respuesta lleva un
// aviso no fatal.
func (uc *StockLedgerUseCase) RegisterExit(ctx context.Context, actor auth.Actor, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(ctx, actor, in, entity.MovementTypeExit)
}

func (uc *StockLedgerUseCase) register(ctx context.Context, actor auth.Actor, in dto.RegisterMovementRequest, movementType string) (*dto.MovementResponse, error) {
	// Validación antes de tocar la persistencia.
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *dto.MovementResponse

	// Lectura-modificación-escritura completa dentro de una transacción, con la
	// fila del producto bloqueada: las operaciones concurrentes sobre el mismo
	// producto serializan y ningún movimiento se pierde ni se aplica dos veces.
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := auth.CheckCategoryAccess(actor, product.CategoryID); err != nil {
			return err
		}

		var newQty int64
		var warning string
		switch movementType {
		case entity.MovementTypeEntry:
			newQty = product.QuantityInStock + in.Quantity
			if newQty > product.MaxStockQuantity {
				warning = WarningAboveMax
			}
		case entity.MovementTypeExit:
			if in.Quantity > product.QuantityInStock {
				return domain.ErrInsufficientStock
			}
			newQty = product.QuantityInStock - in.Quantity
			if newQty < product.MinStockQuantity {
				warning = WarningBelowMin
			}
		default:
			return domain.ErrInvalidInput
		}

		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}

		now := time.Now()
		movement := &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Type:         movementType,
			Quantity:     in.Quantity,
			MovementDate: now,
			CreatedAt:    now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		result = &dto.MovementResponse{
			ID:           movement.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			MovementDate: movement.MovementDate,
			Quantity:     movement.Quantity,
			Type:         movement.Type,
			Warning:      warning,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
