package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementFilter criterios opcionales para listar movimientos.
// Un campo vacío/nil significa "sin filtro" en ese eje.
type MovementFilter struct {
	Tipo string
	From *time.Time
	To   *time.Time
}

// InventoryMovementRepository puerto de persistencia para el historial de
// movimientos. No hay Update ni Delete individual: el historial es append-only
// y solo DeleteByProduct lo recorta, dentro de la transacción que elimina el
// producto.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.InventoryMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error)
	DeleteByProduct(productID string) error
}
