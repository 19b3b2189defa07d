package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	appauth "github.com/tu-usuario/stock-control-api/internal/application/auth"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/stock"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	domainauth "github.com/tu-usuario/stock-control-api/internal/domain/auth"
)

// MovementHandler registra entradas y salidas de stock.
type MovementHandler struct {
	uc     *stock.StockLedgerUseCase
	authUC *appauth.AuthUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *stock.StockLedgerUseCase, authUC *appauth.AuthUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, authUC: authUC}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de stock
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/entry [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterEntry)
}

// RegisterExit godoc
// @Summary      Registrar salida de stock
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/exit [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterExit)
}

type registerFn func(ctx context.Context, actor domainauth.Actor, in dto.RegisterMovementRequest) (*dto.MovementResponse, error)

func (h *MovementHandler) register(c *fiber.Ctx, fn registerFn) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(c.UserContext(), actor, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity positiva son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "categoría fuera del alcance del usuario"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
