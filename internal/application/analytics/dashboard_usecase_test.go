package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/analytics"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// fakeAnalyticsRepo respuestas fijas por campo, con error opcional.
type fakeAnalyticsRepo struct {
	count    int64
	countErr error
	value    decimal.Decimal
	valueErr error
	lowStock []*entity.Product
	lowErr   error

	lowStockLimit int // último limit recibido
}

func (r *fakeAnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count, r.countErr
}

func (r *fakeAnalyticsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	return r.value, r.valueErr
}

func (r *fakeAnalyticsRepo) LowStockProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	r.lowStockLimit = limit
	if r.lowErr != nil {
		return nil, r.lowErr
	}
	if limit > 0 && len(r.lowStock) > limit {
		return r.lowStock[:limit], nil
	}
	return r.lowStock, nil
}

func bajoStock(id string, cantidad int64) *entity.Product {
	return &entity.Product{ID: id, Nombre: "P-" + id, SKU: "SKU-" + id, Cantidad: cantidad, StockMinimo: 5}
}

func TestDashboardGetSummary(t *testing.T) {
	// Inventario de ejemplo: Camiseta 20 × $10 + Pantalón 3 × $20 = $260.
	repo := &fakeAnalyticsRepo{
		count:    2,
		value:    decimal.NewFromInt(260),
		lowStock: []*entity.Product{bajoStock("p2", 3)},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.TotalProducts)
	assert.True(t, decimal.NewFromInt(260).Equal(out.TotalValue), "total_value = Σ cantidad × precio_compra")
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "p2", out.LowStock[0].ID)
	assert.Equal(t, 5, repo.lowStockLimit, "el widget de bajo stock pide el top 5")
}

func TestDashboardGetSummary_TopCincoBajoStock(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		count: 7,
		value: decimal.NewFromInt(100),
		lowStock: []*entity.Product{
			bajoStock("a", 0), bajoStock("b", 1), bajoStock("c", 2),
			bajoStock("d", 3), bajoStock("e", 4), bajoStock("f", 5),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.LowStock, 5)
}

func TestDashboardGetSummary_RedondeaADosDecimales(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		count: 1,
		value: decimal.RequireFromString("33.333333"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "33.33", out.TotalValue.String())
}

func TestDashboardGetSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("db caída")
	casos := []*fakeAnalyticsRepo{
		{countErr: boom},
		{valueErr: boom},
		{lowErr: boom},
	}
	for _, repo := range casos {
		uc := analytics.NewDashboardUseCase(repo)
		_, err := uc.GetSummary(context.Background())
		assert.ErrorIs(t, err, boom)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportUseCase
// ──────────────────────────────────────────────────────────────────────────────

type fakePDFGenerator struct {
	received []*entity.Product
}

func (g *fakePDFGenerator) GenerateLowStockPDF(ctx context.Context, products []*entity.Product) ([]byte, error) {
	g.received = products
	return []byte("%PDF-fake"), nil
}

func TestReportLowStock_SinTope(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		lowStock: []*entity.Product{
			bajoStock("a", 0), bajoStock("b", 1), bajoStock("c", 2),
			bajoStock("d", 3), bajoStock("e", 4), bajoStock("f", 5),
		},
	}
	uc := analytics.NewReportUseCase(repo, &fakePDFGenerator{})

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 6, "el reporte no aplica el tope de 5 del dashboard")
	assert.Equal(t, 0, repo.lowStockLimit)
}

func TestReportLowStockPDF(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		lowStock: []*entity.Product{bajoStock("a", 1)},
	}
	gen := &fakePDFGenerator{}
	uc := analytics.NewReportUseCase(repo, gen)

	pdfBytes, err := uc.LowStockPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	require.Len(t, gen.received, 1)
	assert.Equal(t, "a", gen.received[0].ID)
}
