package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Notas estándar de los movimientos sintetizados.
const (
	notaCreacion = "Creación de producto"
	notaEdicion  = "Ajuste en edición"
)

// ProductUseCase casos de uso CRUD para productos.
//
// Crear con cantidad > 0 y editar cambiando cantidad sintetizan el movimiento
// que mantiene acoplados stock e historial; eliminar arrastra el historial del
// producto. Las tres rutas corren dentro de una transacción vía TxRunner.
type ProductUseCase struct {
	txRunner     inventory.TxRunner
	productRepo  repository.ProductRepository
	providerRepo repository.ProviderRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository, providerRepo repository.ProviderRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, providerRepo: providerRepo}
}

// Create crea un producto. Si la cantidad inicial es > 0 sintetiza un
// movimiento de entrada atribuido al usuario creador, en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" || in.SKU == "" || in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ProveedorID != nil && *in.ProveedorID != "" {
		prov, err := uc.providerRepo.GetByID(*in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if prov == nil {
			return nil, domain.ErrNotFound
		}
	} else {
		in.ProveedorID = nil
	}
	stockMinimo := in.StockMinimo
	if stockMinimo <= 0 {
		stockMinimo = 1
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		SKU:          in.SKU,
		Cantidad:     in.Cantidad,
		StockMinimo:  stockMinimo,
		PrecioCompra: in.PrecioCompra,
		PrecioVenta:  in.PrecioVenta,
		ProveedorID:  in.ProveedorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Cantidad > 0 {
			return movRepo.Create(syntheticMovement(product.ID, entity.MovementTypeEntrada, product.Cantidad, userID, notaCreacion))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita un producto. Si la edición cambia la cantidad, sintetiza un
// único movimiento de reconciliación (entrada si sube, salida si baja) por la
// diferencia absoluta, en la misma transacción que persiste la edición.
// Cantidades iguales no generan movimiento.
func (uc *ProductUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Cantidad != nil && *in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != nil && *in.SKU != "" {
		other, err := uc.productRepo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if in.ProveedorID != nil && *in.ProveedorID != "" {
		prov, err := uc.providerRepo.GetByID(*in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if prov == nil {
			return nil, domain.ErrNotFound
		}
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		oldCantidad := product.Cantidad

		if in.Nombre != nil {
			product.Nombre = *in.Nombre
		}
		if in.Descripcion != nil {
			product.Descripcion = *in.Descripcion
		}
		if in.SKU != nil && *in.SKU != "" {
			product.SKU = *in.SKU
		}
		if in.Cantidad != nil {
			product.Cantidad = *in.Cantidad
		}
		if in.StockMinimo != nil && *in.StockMinimo > 0 {
			product.StockMinimo = *in.StockMinimo
		}
		if in.PrecioCompra != nil {
			product.PrecioCompra = *in.PrecioCompra
		}
		if in.PrecioVenta != nil {
			product.PrecioVenta = *in.PrecioVenta
		}
		if in.ProveedorID != nil {
			if *in.ProveedorID == "" {
				product.ProveedorID = nil
			} else {
				product.ProveedorID = in.ProveedorID
			}
		}
		product.UpdatedAt = time.Now()

		if err := productRepo.Update(product); err != nil {
			return err
		}

		if product.Cantidad != oldCantidad {
			tipo := entity.MovementTypeEntrada
			diff := product.Cantidad - oldCantidad
			if diff < 0 {
				tipo = entity.MovementTypeSalida
				diff = -diff
			}
			if err := movRepo.Create(syntheticMovement(product.ID, tipo, diff, userID, notaEdicion)); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el producto y, en cascada explícita, todo su historial de
// movimientos dentro de la misma transacción. No se registra ningún movimiento
// por la eliminación en sí.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// syntheticMovement arma un movimiento sintetizado por creación o edición.
func syntheticMovement(productoID, tipo string, cantidad int64, userID, nota string) *entity.InventoryMovement {
	now := time.Now()
	var usuario *string
	if userID != "" {
		usuario = &userID
	}
	return &entity.InventoryMovement{
		ID:         uuid.New().String(),
		ProductoID: productoID,
		Tipo:       tipo,
		Cantidad:   cantidad,
		Fecha:      now,
		UsuarioID:  usuario,
		Nota:       nota,
		CreatedAt:  now,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
