package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

var (
	admin = auth.Actor{Role: entity.RoleAdmin}

	catFerreteria = entity.Category{ID: "cat-1", Name: "Ferretería"}
	catPinturas   = entity.Category{ID: "cat-2", Name: "Pinturas"}
)

func newProductUC(products ...entity.Product) (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	categoryRepo := newFakeCategoryRepo(catFerreteria, catPinturas)
	productRepo := newFakeProductRepo(categoryRepo, products...)
	movementRepo := &fakeMovementRepo{}
	return usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo), productRepo, movementRepo
}

func sampleProduct(id, name, categoryID string, qty int64) entity.Product {
	return entity.Product{
		ID:              id,
		Name:            name,
		UnitPrice:       decimal.RequireFromString("100.00"),
		QuantityInStock: qty,
		CategoryID:      categoryID,
	}
}

func TestProductCreate_CategoriaDebeExistir(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(admin, dto.CreateProductRequest{Name: "Martillo", CategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_SinMovimientoDeApertura(t *testing.T) {
	uc, _, movements := newProductUC()

	out, err := uc.Create(admin, dto.CreateProductRequest{
		Name: "Martillo", CategoryID: "cat-1", QuantityInStock: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30), out.QuantityInStock, "la cantidad inicial se toma tal cual")
	assert.Empty(t, movements.movements, "crear producto no genera movimiento de apertura")
	assert.Equal(t, "Ferretería", out.Category.Name)
}

func TestProductCreate_EmpleadoFueraDeCategoria(t *testing.T) {
	uc, _, _ := newProductUC()
	restricted := auth.Actor{Role: entity.RoleEmployee, AllowedCategories: []string{"cat-2"}}

	_, err := uc.Create(restricted, dto.CreateProductRequest{Name: "Martillo", CategoryID: "cat-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductGetByID_IncluyeHistorialDeMovimientos(t *testing.T) {
	uc, _, movements := newProductUC(sampleProduct("prod-1", "Martillo", "cat-1", 10))
	movements.movements = []entity.StockMovement{
		{ID: "m1", ProductID: "prod-1", Type: entity.MovementTypeEntry, Quantity: 5},
		{ID: "m2", ProductID: "prod-1", Type: entity.MovementTypeExit, Quantity: 2},
		{ID: "m3", ProductID: "otro", Type: entity.MovementTypeEntry, Quantity: 9},
	}

	out, err := uc.GetByID(admin, "prod-1")
	require.NoError(t, err)

	require.Len(t, out.Movements, 2, "solo los movimientos del producto pedido")
	assert.Equal(t, "m1", out.Movements[0].ID)
	assert.Equal(t, "m2", out.Movements[1].ID)
	assert.Equal(t, "Martillo", out.Movements[0].ProductName)
}

func TestProductGetByID_EmpleadoRestringidoRecibeForbidden(t *testing.T) {
	uc, _, _ := newProductUC(sampleProduct("prod-1", "Martillo", "cat-1", 10))
	restricted := auth.Actor{Role: entity.RoleEmployee, AllowedCategories: []string{"cat-2"}}

	_, err := uc.GetByID(restricted, "prod-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductList_FiltraPorVisibilidad(t *testing.T) {
	uc, _, _ := newProductUC(
		sampleProduct("prod-1", "Martillo", "cat-1", 10),
		sampleProduct("prod-2", "Esmalte", "cat-2", 5),
		sampleProduct("prod-3", "Alicate", "cat-1", 3),
	)

	// ADMIN ve todo, ordenado por nombre.
	all, err := uc.List(admin)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alicate", all[0].Name)
	assert.Equal(t, "Esmalte", all[1].Name)
	assert.Equal(t, "Martillo", all[2].Name)

	// Empleado restringido a cat-1 nunca ve productos de cat-2.
	restricted := auth.Actor{Role: entity.RoleEmployee, AllowedCategories: []string{"cat-1"}}
	visible, err := uc.List(restricted)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, p := range visible {
		assert.Equal(t, "cat-1", p.Category.ID)
	}

	// Empleado sin categorías asignadas ve todo.
	unrestricted := auth.Actor{Role: entity.RoleEmployee}
	everything, err := uc.List(unrestricted)
	require.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestProductUpdate_CambioDeCategoriaVerificaAmbas(t *testing.T) {
	uc, _, _ := newProductUC(sampleProduct("prod-1", "Martillo", "cat-1", 10))

	// Empleado con acceso solo a cat-1: puede editar, pero no mover a cat-2.
	soloCat1 := auth.Actor{Role: entity.RoleEmployee, AllowedCategories: []string{"cat-1"}}
	newCat := "cat-2"
	_, err := uc.Update(soloCat1, "prod-1", dto.UpdateProductRequest{CategoryID: &newCat})
	assert.ErrorIs(t, err, domain.ErrForbidden, "la categoría destino también debe estar permitida")

	// Con acceso a ambas, el movimiento procede.
	ambas := auth.Actor{Role: entity.RoleEmployee, AllowedCategories: []string{"cat-1", "cat-2"}}
	out, err := uc.Update(ambas, "prod-1", dto.UpdateProductRequest{CategoryID: &newCat})
	require.NoError(t, err)
	assert.Equal(t, "cat-2", out.Category.ID)
	assert.Equal(t, "Pinturas", out.Category.Name)
}

func TestProductUpdate_CategoriaDestinoDebeExistir(t *testing.T) {
	uc, _, _ := newProductUC(sampleProduct("prod-1", "Martillo", "cat-1", 10))

	missing := "no-existe"
	_, err := uc.Update(admin, "prod-1", dto.UpdateProductRequest{CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc, _, _ := newProductUC(sampleProduct("prod-1", "Martillo", "cat-1", 10))

	newName := "Martillo de uña"
	newPrice := decimal.RequireFromString("150.50")
	out, err := uc.Update(admin, "prod-1", dto.UpdateProductRequest{
		Name: &newName, UnitPrice: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Martillo de uña", out.Name)
	assert.True(t, out.UnitPrice.Equal(newPrice))
	assert.Equal(t, int64(10), out.QuantityInStock, "los campos no enviados no cambian")
	assert.Equal(t, "cat-1", out.Category.ID)
}

func TestAdjustAllPrices_PorcentajePositivoYNegativo(t *testing.T) {
	uc, products, _ := newProductUC(
		sampleProduct("prod-1", "Martillo", "cat-1", 10),
		sampleProduct("prod-2", "Esmalte", "cat-2", 5),
	)

	// +10% sobre 100.00 → 110.00 en todos los productos
	require.NoError(t, uc.AdjustAllPrices(decimal.NewFromInt(10)))
	assert.True(t, products.products["prod-1"].UnitPrice.Equal(decimal.RequireFromString("110")))
	assert.True(t, products.products["prod-2"].UnitPrice.Equal(decimal.RequireFromString("110")))

	// -10% sobre 110.00 → 99.00
	require.NoError(t, uc.AdjustAllPrices(decimal.NewFromInt(-10)))
	assert.True(t, products.products["prod-1"].UnitPrice.Equal(decimal.RequireFromString("99")))
}
