package dto

import "time"

// RegisterMovementRequest body para POST /api/stock-movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	IsIn      bool   `json:"is_in"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// MovementResult resultado de un movimiento registrado: identidad del
// movimiento creado y el nuevo nivel de stock.
type MovementResult struct {
	MovementID string `json:"movement_id"`
	ProductID  string `json:"product_id"`
	IsIn       bool   `json:"is_in"`
	Quantity   int64  `json:"quantity"`
	NewStock   int64  `json:"new_stock"`
}

// MovementResponse un movimiento del historial.
type MovementResponse struct {
	ID                string    `json:"id"`
	IsIn              bool      `json:"is_in"`
	Quantity          int64     `json:"quantity"`
	Timestamp         time.Time `json:"timestamp"`
	PerformedByUserID string    `json:"performed_by_user_id"`
}

// LedgerResponse historial de movimientos de un producto, más reciente primero.
type LedgerResponse struct {
	ProductID    string             `json:"product_id"`
	ProductCode  string             `json:"product_code"`
	ProductName  string             `json:"product_name"`
	Category     string             `json:"category"`
	CurrentStock int64              `json:"current_stock"`
	Movements    []MovementResponse `json:"movements"`
}
