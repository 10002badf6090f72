package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
//
// Cantidad es el stock actual autoritativo: cada movimiento confirmado la
// actualiza en la misma transacción que inserta la fila del movimiento, y una
// edición directa de Cantidad sintetiza un movimiento de reconciliación. El
// sistema nunca recalcula Cantidad sumando el historial.
type Product struct {
	ID           string
	Nombre       string
	Descripcion  string
	SKU          string // único
	Cantidad     int64  // stock actual, >= 0
	StockMinimo  int64  // umbral de reposición, default 1
	PrecioCompra decimal.Decimal
	PrecioVenta  decimal.Decimal
	ProveedorID  *string // nullable: "sin proveedor" es ausencia
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si el producto está en o por debajo de su umbral de reposición.
func (p *Product) LowStock() bool {
	return p.Cantidad <= p.StockMinimo
}
