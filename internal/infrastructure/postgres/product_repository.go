package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, unit_price, unit_of_measure, quantity_in_stock, min_stock_quantity, max_stock_quantity, category_id, created_at, updated_at`

// Create persiste un nuevo producto con su cantidad inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, unit_price, unit_of_measure, quantity_in_stock, min_stock_quantity, max_stock_quantity, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UnitPrice, product.UnitOfMeasure,
		product.QuantityInStock, product.MinStockQuantity, product.MaxStockQuantity,
		product.CategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene un producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa los movimientos
// concurrentes sobre el mismo producto.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.UnitPrice, &p.UnitOfMeasure, &p.QuantityInStock,
		&p.MinStockQuantity, &p.MaxStockQuantity, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (incluida la cantidad fijada desde el
// catálogo; los movimientos usan UpdateQuantity).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, unit_price = $3, unit_of_measure = $4, quantity_in_stock = $5,
			min_stock_quantity = $6, max_stock_quantity = $7, category_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UnitPrice, product.UnitOfMeasure,
		product.QuantityInStock, product.MinStockQuantity, product.MaxStockQuantity,
		product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad en stock (usado por el libro de
// movimientos dentro de su transacción).
func (r *ProductRepo) UpdateQuantity(productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity_in_stock = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// ListVisible lista productos con el nombre de su categoría, ordenados por
// nombre ascendente. categoryIDs vacío = todos (actor sin restricción).
func (r *ProductRepo) ListVisible(categoryIDs []string) ([]repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.unit_price, p.unit_of_measure, p.quantity_in_stock,
			p.min_stock_quantity, p.max_stock_quantity, p.category_id, p.created_at, p.updated_at,
			c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id`
	args := []any{}
	if len(categoryIDs) > 0 {
		query += ` WHERE p.category_id = ANY($1)`
		args = append(args, categoryIDs)
	}
	query += ` ORDER BY p.name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithCategory
	for rows.Next() {
		var p repository.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.UnitOfMeasure, &p.QuantityInStock,
			&p.MinStockQuantity, &p.MaxStockQuantity, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los productos de una categoría.
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// AdjustAllPrices multiplica el precio de todos los productos por
// (1 + percentage/100) en un único UPDATE set-based: no lee estado por fila,
// así no pisa escrituras concurrentes de otros writers.
func (r *ProductRepo) AdjustAllPrices(percentage decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET unit_price = unit_price * (1 + $1::numeric / 100), updated_at = now()`,
		percentage,
	)
	if err != nil {
		return fmt.Errorf("adjust prices: %w", err)
	}
	return nil
}
