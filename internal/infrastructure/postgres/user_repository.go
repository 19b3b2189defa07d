package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool
// o tx). Las categorías permitidas viven en user_allowed_categories y se
// cargan junto al usuario.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario y sus categorías permitidas.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return r.ReplaceAllowedCategories(user.ID, user.AllowedCategoryIDs)
}

// GetByID obtiene un usuario por ID con sus categorías permitidas.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email con sus categorías permitidas.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *UserRepo) getBy(where, arg string) (*entity.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	ids, err := r.allowedCategoryIDs(u.ID)
	if err != nil {
		return nil, err
	}
	u.AllowedCategoryIDs = ids
	return &u, nil
}

func (r *UserRepo) allowedCategoryIDs(userID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id FROM user_allowed_categories WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list allowed categories: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan allowed category: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// List lista todos los usuarios con sus categorías permitidas.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		ids, err := r.allowedCategoryIDs(u.ID)
		if err != nil {
			return nil, err
		}
		u.AllowedCategoryIDs = ids
	}
	return list, nil
}

// Delete elimina un usuario; la tabla puente cae en cascada.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ReplaceAllowedCategories reemplaza el conjunto de categorías permitidas.
func (r *UserRepo) ReplaceAllowedCategories(userID string, categoryIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM user_allowed_categories WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear allowed categories: %w", err)
	}
	for _, categoryID := range categoryIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO user_allowed_categories (user_id, category_id) VALUES ($1, $2)`,
			userID, categoryID); err != nil {
			return fmt.Errorf("insert allowed category: %w", err)
		}
	}
	return nil
}
