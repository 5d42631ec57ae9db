package dto

// StockSummaryRow una fila del resumen de stock (un producto con su categoría).
type StockSummaryRow struct {
	ProductID    string `json:"product_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int64  `json:"current_stock"`
}

// StockSummaryResponse resumen de stock de todos los productos, ordenado por código.
type StockSummaryResponse struct {
	Items []StockSummaryRow `json:"items"`
	// FromCache indica si la respuesta se sirvió desde cache (diagnóstico).
	FromCache bool `json:"from_cache"`
}
