package repository

import "github.com/tu-usuario/stock-control-api/internal/domain/entity"

// RefreshTokenRepository define el puerto de persistencia para tokens de
// renovación (DIP).
type RefreshTokenRepository interface {
	Create(token *entity.RefreshToken) error
	GetByToken(token string) (*entity.RefreshToken, error)
	DeleteByToken(token string) error
	DeleteByUser(userID string) error
}
