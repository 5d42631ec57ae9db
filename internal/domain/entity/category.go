package entity

import "time"

// Category representa una categoría de productos del almacén.
// Name es único a nivel global (comparación exacta, sensible a mayúsculas).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
