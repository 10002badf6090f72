package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para dashboard y reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el total de productos registrados.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM productos`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}

// TotalInventoryValue devuelve la suma de cantidad * precio_compra sobre todos
// los productos; COALESCE trata un precio_compra nulo como 0.
func (r *AnalyticsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(cantidad * COALESCE(precio_compra, 0)), 0) FROM productos`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor del inventario: %w", err)
	}
	return total, nil
}

// LowStockProducts devuelve los productos con cantidad <= stock_minimo,
// ascendente por cantidad. limit <= 0 devuelve todos.
func (r *AnalyticsRepo) LowStockProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM productos
		WHERE cantidad <= stock_minimo ORDER BY cantidad ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bajo stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}
