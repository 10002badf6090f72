package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// LowStockPDFGenerator puerto para la representación PDF del reporte de bajo
// stock. Lo implementa infrastructure/pdf.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// ReportUseCase reportes de inventario: bajo stock completo (sin el tope de 5
// del dashboard) en JSON o PDF.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	pdfGenerator  LowStockPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository, pdfGenerator LowStockPDFGenerator) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo, pdfGenerator: pdfGenerator}
}

// LowStock devuelve todos los productos en o bajo su umbral, ascendente por cantidad.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.analyticsRepo.LowStockProducts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte bajo stock: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// LowStockPDF genera el reporte de bajo stock como PDF.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.analyticsRepo.LowStockProducts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte bajo stock: %w", err)
	}
	return uc.pdfGenerator.GenerateLowStockPDF(ctx, products)
}
