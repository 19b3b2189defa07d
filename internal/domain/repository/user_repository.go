package repository

import "github.com/tu-usuario/stock-control-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las categorías permitidas viven en una tabla puente y se cargan junto al usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(id string) error
	ReplaceAllowedCategories(userID string, categoryIDs []string) error
}
