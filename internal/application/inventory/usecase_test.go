package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
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
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.From != nil && m.Fecha.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Fecha.After(*filter.To) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
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

// fakeTxRunner ejecuta el callback directamente sobre los fakes compartidos.
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

func newLedger(products ...*entity.Product) (*inventory.LedgerUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	uc := inventory.NewLedgerUseCase(&fakeTxRunner{products: productRepo, movs: movRepo}, productRepo)
	return uc, productRepo, movRepo
}

func producto(id string, cantidad int64) *entity.Product {
	return &entity.Product{ID: id, Nombre: "Camiseta", SKU: "SKU-" + id, Cantidad: cantidad, StockMinimo: 5}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, productRepo, movRepo := newLedger(producto("p1", 10))
	usuario := "u1"

	out, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "p1", Tipo: entity.MovementTypeEntrada, Cantidad: 7, UsuarioID: usuario, Nota: "reposición",
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(17), p.Cantidad, "entrada debe sumar al stock")

	require.Len(t, movRepo.movements, 1)
	m := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, m.Tipo)
	assert.Equal(t, int64(7), m.Cantidad, "el movimiento registra la magnitud, no el delta con signo")
	require.NotNil(t, m.UsuarioID)
	assert.Equal(t, usuario, *m.UsuarioID)
	assert.Equal(t, "reposición", m.Nota)

	assert.Equal(t, m.ID, out.ID)
	assert.Equal(t, "p1", out.ProductoID)
}

func TestRegisterMovement_SalidaRestaStock(t *testing.T) {
	uc, productRepo, movRepo := newLedger(producto("p1", 10))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "p1", Tipo: entity.MovementTypeSalida, Cantidad: 4,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(6), p.Cantidad)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, int64(4), movRepo.movements[0].Cantidad)
}

func TestRegisterMovement_SalidaExactaDejaStockEnCero(t *testing.T) {
	uc, productRepo, _ := newLedger(producto("p1", 4))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "p1", Tipo: entity.MovementTypeSalida, Cantidad: 4,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(0), p.Cantidad, "salida por el total disponible es válida")
}

func TestRegisterMovement_SalidaInsuficiente_NoCambiaEstado(t *testing.T) {
	uc, productRepo, movRepo := newLedger(producto("p1", 3))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "p1", Tipo: entity.MovementTypeSalida, Cantidad: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(3), p.Cantidad, "el stock no debe cambiar en un rechazo")
	assert.Empty(t, movRepo.movements, "no debe quedar movimiento registrado en un rechazo")
}

func TestRegisterMovement_AjusteSuma(t *testing.T) {
	// El ajuste siempre suma, igual que una entrada; una corrección a la baja
	// se modela como salida.
	uc, productRepo, movRepo := newLedger(producto("p1", 10))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "p1", Tipo: entity.MovementTypeAjuste, Cantidad: 2,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(12), p.Cantidad)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementTypeAjuste, movRepo.movements[0].Tipo)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _, movRepo := newLedger()

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductoID: "no-existe", Tipo: entity.MovementTypeEntrada, Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newLedger(producto("p1", 10))
	ctx := context.Background()

	casos := []inventory.MovementInput{
		{ProductoID: "p1", Tipo: "traslado", Cantidad: 1},                  // tipo desconocido
		{ProductoID: "p1", Tipo: entity.MovementTypeEntrada, Cantidad: 0},  // cantidad cero
		{ProductoID: "p1", Tipo: entity.MovementTypeEntrada, Cantidad: -5}, // cantidad negativa
		{ProductoID: "", Tipo: entity.MovementTypeEntrada, Cantidad: 1},    // sin producto
	}
	for _, in := range casos {
		_, err := uc.RegisterMovement(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %+v", in)
	}
}

func TestRegisterMovement_MovimientosSucesivos(t *testing.T) {
	uc, productRepo, movRepo := newLedger(producto("p1", 0))
	ctx := context.Background()

	pasos := []struct {
		tipo     string
		cantidad int64
	}{
		{entity.MovementTypeEntrada, 10},
		{entity.MovementTypeSalida, 3},
		{entity.MovementTypeAjuste, 1},
		{entity.MovementTypeSalida, 8},
	}
	for _, paso := range pasos {
		_, err := uc.RegisterMovement(ctx, inventory.MovementInput{
			ProductoID: "p1", Tipo: paso.tipo, Cantidad: paso.cantidad,
		})
		require.NoError(t, err)
	}

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, int64(0), p.Cantidad, "0 +10 -3 +1 -8 = 0")
	assert.Len(t, movRepo.movements, 4, "cada operación exitosa deja exactamente una fila")
}
