package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. La gestión de categorías es de ADMIN
// (restricción en la capa HTTP); el listado es visible para cualquier usuario
// autenticado.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Size:      in.Size,
		Packaging: in.Packaging,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return uc.toResponse(category)
}

// List lista todas las categorías ordenadas por nombre ascendente.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.ListAllByName()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out, err := uc.toResponse(c)
		if err != nil {
			return nil, err
		}
		items = append(items, *out)
	}
	return items, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(category)
}

// Update actualiza nombre, presentación y empaque.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.Size = in.Size
	category.Packaging = in.Packaging
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return uc.toResponse(category)
}

// Delete elimina una categoría. Si tiene productos asociados la restricción de
// clave foránea lo impide y se devuelve ErrConflict.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

func (uc *CategoryUseCase) toResponse(c *entity.Category) (*dto.CategoryResponse, error) {
	count, err := uc.productRepo.CountByCategory(c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Size:         c.Size,
		Packaging:    c.Packaging,
		ProductCount: count,
	}, nil
}
