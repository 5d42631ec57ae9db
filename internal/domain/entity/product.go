package entity

import "time"

// Product representa un producto del almacén. CurrentStock es un campo
// desnormalizado: siempre debe ser igual a la suma con signo de sus
// movimientos, y nunca negativo. Solo el motor de movimientos lo modifica.
type Product struct {
	ID           string
	Code         string // código único global
	Name         string
	CategoryID   string
	CurrentStock int64 // inicia en 0
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Category se carga solo en lecturas "con categoría" (GetByIDWithCategory,
	// ListWithCategory); en el resto de operaciones queda en nil.
	Category *Category
}
