package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. CurrentStock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, category_id, current_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.CategoryID,
		product.CurrentStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID sin resolver la categoría; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, code, name, category_id, current_stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByIDWithCategory obtiene un producto con su categoría resuelta; (nil, nil) si no existe.
func (r *ProductRepo) GetByIDWithCategory(id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.code, p.name, p.category_id, p.current_stock, p.created_at, p.updated_at,
		       c.id, c.name, c.created_at, c.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with category: %w", err)
	}
	p.Category = &c
	return &p, nil
}

// ListWithCategory lista todos los productos con su categoría, ordenados por código.
func (r *ProductRepo) ListWithCategory() ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.code, p.name, p.category_id, p.current_stock, p.created_at, p.updated_at,
		       c.id, c.name, c.created_at, c.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var c entity.Category
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
			&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = &c
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza código, nombre y categoría. No toca current_stock:
// el stock solo cambia vía AdjustStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET code = $2, name = $3, category_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Con movimientos asociados la FK responde ErrConflict.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CodeExists verifica la unicidad del código. excludeID != "" excluye ese registro del chequeo.
func (r *ProductRepo) CodeExists(code, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE code = $1 AND id <> $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("product code exists: %w", err)
	}
	return exists, nil
}

// AdjustStock aplica un delta con signo sobre current_stock como UPDATE
// condicional: la no-negatividad se evalúa en la BD contra el valor
// comprometido, nunca contra una lectura previa del proceso. Dos llamadas
// concurrentes sobre el mismo producto serializan en la fila.
func (r *ProductRepo) AdjustStock(id string, delta int64) (int64, error) {
	query := `
		UPDATE products
		SET current_stock = current_stock + $2, updated_at = now()
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING current_stock`
	var newStock int64
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sin fila afectada: o el producto no existe, o la salida dejaría
			// stock negativo. Distinguir con un chequeo de existencia.
			exists, exErr := r.existsByID(id)
			if exErr != nil {
				return 0, exErr
			}
			if !exists {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return newStock, nil
}

func (r *ProductRepo) existsByID(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}
