package entity

import "time"

// Tipos de movimiento de inventario.
//
// "ajuste" se aplica siempre como suma, igual que "entrada": el sistema de
// origen nunca implementó la corrección a la baja y ese comportamiento se
// conserva tal cual (una salida cubre el caso de resta).
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
	MovementTypeAjuste  = "ajuste"
)

// ValidMovementType reporta si tipo es uno de los tres tipos conocidos.
func ValidMovementType(tipo string) bool {
	return tipo == MovementTypeEntrada || tipo == MovementTypeSalida || tipo == MovementTypeAjuste
}

// InventoryMovement representa un movimiento de stock. Append-only: solo se
// elimina en cascada al eliminar su producto.
type InventoryMovement struct {
	ID         string
	ProductoID string
	Tipo       string
	Cantidad   int64 // magnitud solicitada, siempre positiva
	Fecha      time.Time
	UsuarioID  *string // usuario que ejecutó la acción; nullable
	Nota       string
	CreatedAt  time.Time
}
