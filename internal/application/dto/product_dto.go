package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Cantidad > 0 sintetiza un movimiento
// de entrada inicial.
type CreateProductRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	SKU          string          `json:"sku"`
	Cantidad     int64           `json:"cantidad"`
	StockMinimo  int64           `json:"stock_minimo"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	ProveedorID  *string         `json:"proveedor_id"`
}

// UpdateProductRequest edición parcial. Un cambio de Cantidad sintetiza el
// movimiento de reconciliación correspondiente.
type UpdateProductRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	SKU          *string          `json:"sku"`
	Cantidad     *int64           `json:"cantidad"`
	StockMinimo  *int64           `json:"stock_minimo"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	ProveedorID  *string          `json:"proveedor_id"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	SKU          string          `json:"sku"`
	Cantidad     int64           `json:"cantidad"`
	StockMinimo  int64           `json:"stock_minimo"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	ProveedorID  *string         `json:"proveedor_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
