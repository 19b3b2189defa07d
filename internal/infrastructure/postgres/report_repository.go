package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountProductsByCategory agrupa el conteo de productos por nombre de
// categoría. categoryIDs vacío = sin filtro de visibilidad.
func (r *ReportRepo) CountProductsByCategory(categoryIDs []string) ([]repository.CategoryProductCount, error) {
	query := `
		SELECT c.name, COUNT(p.id)
		FROM products p
		JOIN categories c ON c.id = p.category_id`
	args := []any{}
	if len(categoryIDs) > 0 {
		query += ` WHERE p.category_id = ANY($1)`
		args = append(args, categoryIDs)
	}
	query += ` GROUP BY c.name ORDER BY c.name ASC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	defer rows.Close()
	var results []repository.CategoryProductCount
	for rows.Next() {
		var row repository.CategoryProductCount
		if err := rows.Scan(&row.CategoryName, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopMovementProduct devuelve el producto con más movimientos del tipo dado.
// Agrega sobre TODOS los movimientos sin filtro de visibilidad (comportamiento
// heredado del sistema original). Empates resueltos por nombre ascendente para
// un resultado estable. nil si no hay movimientos del tipo.
func (r *ReportRepo) TopMovementProduct(movementType string) (*repository.TopMovementProduct, error) {
	query := `
		SELECT p.name, COUNT(sm.id) AS movement_count
		FROM stock_movements sm
		JOIN products p ON p.id = sm.product_id
		WHERE sm.type = $1
		GROUP BY p.name
		ORDER BY movement_count DESC, p.name ASC
		LIMIT 1`
	var top repository.TopMovementProduct
	err := r.pool.QueryRow(context.Background(), query, movementType).Scan(&top.ProductName, &top.MovementCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top movement product: %w", err)
	}
	return &top, nil
}
