package dto

// APIResponse es el sobre estándar de todas las respuestas de la API
// Éxito: { "success": true, "data": ... } (token solo en auth)
// Error:  { "success": false, "error": "mensaje" }
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
	Error   string      `json:"error,omitempty"`
}
