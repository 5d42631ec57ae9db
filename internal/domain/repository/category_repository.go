package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// NameExists verifica unicidad del nombre; excludeID != "" excluye ese
	// registro del chequeo (para updates sobre sí mismo).
	NameExists(name, excludeID string) (bool, error)
	ExistsByID(id string) (bool, error)
	// HasProducts indica si la categoría todavía tiene productos asociados
	// (bloquea el delete).
	HasProducts(id string) (bool, error)
}
