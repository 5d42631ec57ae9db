package dto

import "time"

// ProductRequest body para crear o actualizar un producto.
// CurrentStock no aparece: el stock solo cambia vía movimientos.
type ProductRequest struct {
	Code       string `json:"code" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// ProductResponse salida de un producto con su categoría resuelta.
type ProductResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CurrentStock int64     `json:"current_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
