package entity

import "time"

// StockMovement representa una entrada o salida de un producto.
// Es el libro mayor del inventario: los registros son inmutables y
// solo se crean vía el motor de movimientos (nunca update ni delete).
type StockMovement struct {
	ID                string
	ProductID         string
	IsIn              bool  // true = entrada, false = salida
	Quantity          int64 // estrictamente positivo; el signo lo da IsIn
	Timestamp         time.Time
	PerformedByUserID string // actor autenticado; obligatorio
}
