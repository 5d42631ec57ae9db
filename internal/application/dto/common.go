package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// RequestID se incluye en errores internos para correlación en logs.
	RequestID string `json:"request_id,omitempty"`
	// Detail solo se llena en modo development (diagnóstico).
	Detail string `json:"detail,omitempty"`
}
