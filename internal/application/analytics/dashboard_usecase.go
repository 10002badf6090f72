// Package analytics contiene los casos de uso de lectura agregada: el resumen
// del dashboard y los reportes de bajo stock.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const dashboardLowStockTop = 5 // productos en el widget de bajo stock

// DashboardUseCase genera el resumen del inventario.
//
// Fuente de datos: AnalyticsRepository (consultas read-only); no toca la tabla
// de productos directamente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. CountProducts         → TotalProducts
//  2. TotalInventoryValue   → TotalValue (Σ cantidad × precio_compra)
//  3. LowStockProducts(5)   → LowStock (cantidad <= stock_minimo, ascendente)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}

	countCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalInventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.LowStockProducts(ctx, dashboardLowStockTop)
		lowCh <- lowStockResult{products, err}
	}()

	count := <-countCh
	value := <-valueCh
	low := <-lowCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", count.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: bajo stock: %w", low.err)
	}

	lowStock := make([]dto.ProductResponse, 0, len(low.products))
	for _, p := range low.products {
		lowStock = append(lowStock, toProductResponse(p))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: count.n,
		TotalValue:    value.v.Round(2),
		LowStock:      lowStock,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		SKU:          p.SKU,
		Cantidad:     p.Cantidad,
		StockMinimo:  p.StockMinimo,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		ProveedorID:  p.ProveedorID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
