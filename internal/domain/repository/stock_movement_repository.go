package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el libro mayor.
// Append-only: no existe Update ni Delete sobre movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve el historial completo, más reciente primero.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// HasMovementsForProduct indica si el producto tiene historial
	// (bloquea el delete del producto).
	HasMovementsForProduct(productID string) (bool, error)
}
