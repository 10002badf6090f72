package dto

import "time"

// RegisterMovementRequest registro manual de un movimiento de stock.
type RegisterMovementRequest struct {
	ProductoID string `json:"producto_id"`
	Tipo       string `json:"tipo"` // entrada | salida | ajuste
	Cantidad   int64  `json:"cantidad"`
	Nota       string `json:"nota"`
}

// MovementResponse representación de un movimiento.
type MovementResponse struct {
	ID         string    `json:"id"`
	ProductoID string    `json:"producto_id"`
	Tipo       string    `json:"tipo"`
	Cantidad   int64     `json:"cantidad"`
	Fecha      time.Time `json:"fecha"`
	UsuarioID  *string   `json:"usuario_id,omitempty"`
	Nota       string    `json:"nota,omitempty"`
}

// MovementListResponse listado paginado de movimientos (fecha descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
