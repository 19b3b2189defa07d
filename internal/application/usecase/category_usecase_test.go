package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

func newCategoryUC(products ...entity.Product) (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	categoryRepo := newFakeCategoryRepo(catFerreteria, catPinturas)
	productRepo := newFakeProductRepo(categoryRepo, products...)
	return usecase.NewCategoryUseCase(categoryRepo, productRepo), categoryRepo
}

func TestCategoryCreate_NombreRequerido(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Tornillería", Size: "caja", Packaging: "x100"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Tornillería", out.Name)
	assert.Zero(t, out.ProductCount)
}

func TestCategoryList_OrdenadaPorNombreConConteo(t *testing.T) {
	uc, _ := newCategoryUC(
		entity.Product{ID: "prod-1", Name: "Martillo", CategoryID: "cat-1"},
		entity.Product{ID: "prod-2", Name: "Alicate", CategoryID: "cat-1"},
	)

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ferretería", items[0].Name)
	assert.Equal(t, int64(2), items[0].ProductCount)
	assert.Equal(t, "Pinturas", items[1].Name)
	assert.Zero(t, items[1].ProductCount)
}

func TestCategoryGetByID_NoEncontrada(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_ReemplazaCampos(t *testing.T) {
	uc, _ := newCategoryUC()

	out, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Name: "Herramientas", Size: "unidad", Packaging: "blister"})
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", out.Name)
	assert.Equal(t, "unidad", out.Size)
	assert.Equal(t, "blister", out.Packaging)
}

func TestCategoryDelete_NoEncontrada(t *testing.T) {
	uc, repo := newCategoryUC()

	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)

	require.NoError(t, uc.Delete("cat-2"))
	_, ok := repo.categories["cat-2"]
	assert.False(t, ok)
}
