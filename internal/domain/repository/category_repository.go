package repository

import "github.com/tu-usuario/stock-control-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByIDs(ids []string) ([]*entity.Category, error)
	ListAllByName() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
