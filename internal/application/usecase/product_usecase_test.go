package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateCantidad(id string, cantidad int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cantidad = cantidad
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductoID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) DeleteByProduct(productID string) error {
	var kept []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductoID != productID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*entity.Provider
}

func (r *fakeProviderRepo) Create(p *entity.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *fakeProviderRepo) GetByID(id string) (*entity.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProviderRepo) Update(p *entity.Provider) error { return nil }

func (r *fakeProviderRepo) List(limit, offset int) ([]*entity.Provider, error) { return nil, nil }

func (r *fakeProviderRepo) Delete(id string) error { return nil }

type fakeTxRunner struct {
	products *fakeProductRepo
	movs     *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return fn(r.products, r.movs)
}

func newProductUC(products ...*entity.Product) (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	providerRepo := &fakeProviderRepo{providers: map[string]*entity.Provider{
		"prov-1": {ID: "prov-1", Nombre: "Proveedor A"},
	}}
	uc := usecase.NewProductUseCase(&fakeTxRunner{products: productRepo, movs: movRepo}, productRepo, providerRepo)
	return uc, productRepo, movRepo
}

func existente(id string, cantidad int64) *entity.Product {
	return &entity.Product{
		ID: id, Nombre: "Camiseta", SKU: "SKU-" + id,
		Cantidad: cantidad, StockMinimo: 5,
		PrecioCompra: decimal.NewFromInt(10), PrecioVenta: decimal.NewFromInt(15),
	}
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CantidadInicialSintetizaEntrada(t *testing.T) {
	uc, _, movRepo := newProductUC()

	out, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{
		Nombre: "Camiseta", SKU: "SKU-001", Cantidad: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), out.Cantidad)

	require.Len(t, movRepo.movements, 1)
	m := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, m.Tipo)
	assert.Equal(t, int64(20), m.Cantidad)
	assert.Equal(t, "Creación de producto", m.Nota)
	assert.Equal(t, out.ID, m.ProductoID)
	require.NotNil(t, m.UsuarioID)
	assert.Equal(t, "u1", *m.UsuarioID)
}

func TestProductCreate_CantidadCeroNoSintetizaMovimiento(t *testing.T) {
	uc, _, movRepo := newProductUC()

	out, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{
		Nombre: "Camiseta", SKU: "SKU-001", Cantidad: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Cantidad)
	assert.Empty(t, movRepo.movements)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, _ := newProductUC(existente("p1", 5))

	_, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{
		Nombre: "Otro", SKU: "SKU-p1", Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{
		Nombre: "Camiseta", SKU: "SKU-001", ProveedorID: strPtr("prov-no-existe"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_StockMinimoPorDefecto(t *testing.T) {
	uc, _, _ := newProductUC()

	out, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{
		Nombre: "Camiseta", SKU: "SKU-001",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.StockMinimo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — reconciliación de cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CantidadSubeSintetizaEntrada(t *testing.T) {
	uc, productRepo, movRepo := newProductUC(existente("p1", 20))

	out, err := uc.Update(context.Background(), "p1", "u1", dto.UpdateProductRequest{
		Cantidad: int64Ptr(25),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), out.Cantidad)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(25), p.Cantidad)

	require.Len(t, movRepo.movements, 1)
	m := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, m.Tipo)
	assert.Equal(t, int64(5), m.Cantidad, "la magnitud es la diferencia absoluta")
	assert.Equal(t, "Ajuste en edición", m.Nota)
}

func TestProductUpdate_CantidadBajaSintetizaSalida(t *testing.T) {
	uc, _, movRepo := newProductUC(existente("p1", 20))

	out, err := uc.Update(context.Background(), "p1", "u1", dto.UpdateProductRequest{
		Cantidad: int64Ptr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Cantidad)

	require.Len(t, movRepo.movements, 1)
	m := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeSalida, m.Tipo)
	assert.Equal(t, int64(8), m.Cantidad)
}

func TestProductUpdate_CantidadIgualNoSintetizaMovimiento(t *testing.T) {
	uc, _, movRepo := newProductUC(existente("p1", 20))

	_, err := uc.Update(context.Background(), "p1", "u1", dto.UpdateProductRequest{
		Cantidad: int64Ptr(20),
		Nombre:   strPtr("Camiseta Premium"),
	})
	require.NoError(t, err)
	assert.Empty(t, movRepo.movements, "cantidad sin cambio no genera movimiento")
}

func TestProductUpdate_SinCantidadNoSintetizaMovimiento(t *testing.T) {
	uc, productRepo, movRepo := newProductUC(existente("p1", 20))

	out, err := uc.Update(context.Background(), "p1", "u1", dto.UpdateProductRequest{
		Nombre: strPtr("Camiseta Premium"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta Premium", out.Nombre)
	assert.Empty(t, movRepo.movements)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(20), p.Cantidad, "la cantidad se conserva si no se envía")
}

func TestProductUpdate_ProductoInexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Update(context.Background(), "no-existe", "u1", dto.UpdateProductRequest{
		Nombre: strPtr("X"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CantidadNegativaRechazada(t *testing.T) {
	uc, _, _ := newProductUC(existente("p1", 20))

	_, err := uc.Update(context.Background(), "p1", "u1", dto.UpdateProductRequest{
		Cantidad: int64Ptr(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — cascada del historial
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_EliminaProductoYSuHistorial(t *testing.T) {
	uc, productRepo, movRepo := newProductUC(existente("p1", 20), existente("p2", 5))
	movRepo.movements = []*entity.InventoryMovement{
		{ID: "m1", ProductoID: "p1", Tipo: entity.MovementTypeEntrada, Cantidad: 20},
		{ID: "m2", ProductoID: "p1", Tipo: entity.MovementTypeSalida, Cantidad: 2},
		{ID: "m3", ProductoID: "p2", Tipo: entity.MovementTypeEntrada, Cantidad: 5},
	}

	require.NoError(t, uc.Delete(context.Background(), "p1"))

	p, _ := productRepo.GetByID("p1")
	assert.Nil(t, p, "el producto debe desaparecer")

	require.Len(t, movRepo.movements, 1, "solo debe quedar el historial de otros productos")
	assert.Equal(t, "m3", movRepo.movements[0].ID)
}

func TestProductDelete_ProductoInexistente(t *testing.T) {
	uc, _, _ := newProductUC()
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
