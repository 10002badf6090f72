package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
//
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE):
// bloquea la fila del producto para que lecturas y escrituras de Cantidad de
// movimientos concurrentes no se intercalen.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCantidad(id string, cantidad int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
