package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// AnalyticsRepository consultas read-only para el dashboard y los reportes.
type AnalyticsRepository interface {
	// CountProducts devuelve el total de productos registrados.
	CountProducts(ctx context.Context) (int64, error)
	// TotalInventoryValue devuelve la suma de cantidad * precio_compra sobre
	// todos los productos (precio_compra nulo cuenta como 0).
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	// LowStockProducts devuelve los productos con cantidad <= stock_minimo,
	// ascendente por cantidad. limit <= 0 significa sin tope.
	LowStockProducts(ctx context.Context, limit int) ([]*entity.Product, error)
}
