package http

import (
	"github.com/gofiber/fiber/v2"
	appauth "github.com/tu-usuario/stock-control-api/internal/application/auth"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/infrastructure/pdf"
)

// ReportHandler reportes de solo lectura. Cada reporte (salvo el de productos
// con más movimientos) corre bajo la visibilidad del actor.
type ReportHandler struct {
	uc     *usecase.ReportUseCase
	authUC *appauth.AuthUseCase
	pdfGen *pdf.PriceListPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, authUC *appauth.AuthUseCase, pdfGen *pdf.PriceListPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, authUC: authUC, pdfGen: pdfGen}
}

// PriceList godoc
// @Summary      Lista de precios de los productos visibles
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PriceListItem
// @Router       /api/reports/price-list [get]
func (h *ReportHandler) PriceList(c *fiber.Ctx) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.uc.PriceList(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PriceListPDF godoc
// @Summary      Lista de precios en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/price-list/pdf [get]
func (h *ReportHandler) PriceListPDF(c *fiber.Ctx) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	items, err := h.uc.PriceList(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	raw, err := h.pdfGen.Generate(items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-de-precios.pdf"`)
	return c.Send(raw)
}

// StockBalance godoc
// @Summary      Valorización de stock (cantidad × precio unitario)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockBalanceItem
// @Router       /api/reports/stock-balance [get]
func (h *ReportHandler) StockBalance(c *fiber.Ctx) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.uc.StockBalance(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BelowMinStock godoc
// @Summary      Productos por debajo de su stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BelowMinStockItem
// @Router       /api/reports/below-min-stock [get]
func (h *ReportHandler) BelowMinStock(c *fiber.Ctx) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.uc.BelowMinStock(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductCountByCategory godoc
// @Summary      Conteo de productos por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductCountByCategoryItem
// @Router       /api/reports/product-count-by-category [get]
func (h *ReportHandler) ProductCountByCategory(c *fiber.Ctx) error {
	actor, err := h.authUC.ActorFor(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.uc.ProductCountByCategory(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopMovementProducts godoc
// @Summary      Producto con más entradas y producto con más salidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TopMovementProductsResponse
// @Router       /api/reports/top-movement-products [get]
func (h *ReportHandler) TopMovementProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopMovementProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
