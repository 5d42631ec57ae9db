package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDWithCategory resuelve también la categoría del producto.
	GetByIDWithCategory(id string) (*entity.Product, error)
	// ListWithCategory lista todos los productos con su categoría, ordenados por código.
	ListWithCategory() ([]*entity.Product, error)
	// Update no toca CurrentStock: el stock solo cambia vía AdjustStock.
	Update(product *entity.Product) error
	Delete(id string) error
	// CodeExists verifica unicidad del código; excludeID != "" excluye ese
	// registro del chequeo (para updates sobre sí mismo).
	CodeExists(code, excludeID string) (bool, error)
	// AdjustStock aplica un delta con signo sobre current_stock como UPDATE
	// condicional atómico en la BD: falla con domain.ErrInsufficientStock si el
	// resultado quedaría negativo y con domain.ErrNotFound si el producto no
	// existe. Devuelve el stock resultante. Usar siempre dentro de la misma
	// transacción que inserta el movimiento.
	AdjustStock(id string, delta int64) (int64, error)
}
