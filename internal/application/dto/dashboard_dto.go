package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del inventario para la vista principal.
type DashboardSummaryDTO struct {
	TotalProducts int64             `json:"total_products"`
	TotalValue    decimal.Decimal   `json:"total_value"` // suma de cantidad * precio_compra
	LowStock      []ProductResponse `json:"low_stock"`   // cantidad <= stock_minimo, ascendente, top 5
}
