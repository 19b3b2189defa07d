package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)

// RefreshTokenRepo implementación de RefreshTokenRepository sobre PostgreSQL.
type RefreshTokenRepo struct {
	q Querier
}

// NewRefreshTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRefreshTokenRepository(q Querier) *RefreshTokenRepo {
	return &RefreshTokenRepo{q: q}
}

// Create persiste un refresh token.
func (r *RefreshTokenRepo) Create(token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, token, user_id, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		token.ID, token.Token, token.UserID, token.ExpiryDate, token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// GetByToken obtiene un refresh token por su valor.
func (r *RefreshTokenRepo) GetByToken(token string) (*entity.RefreshToken, error) {
	query := `SELECT id, token, user_id, expiry_date, created_at FROM refresh_tokens WHERE token = $1`
	var t entity.RefreshToken
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&t.ID, &t.Token, &t.UserID, &t.ExpiryDate, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return &t, nil
}

// DeleteByToken elimina un refresh token por su valor.
func (r *RefreshTokenRepo) DeleteByToken(token string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// DeleteByUser elimina todos los refresh tokens de un usuario.
func (r *RefreshTokenRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete refresh tokens by user: %w", err)
	}
	return nil
}
