package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos de stock (entrada, salida, ajuste) de
// forma transaccional: bloqueo de fila del producto (SELECT FOR UPDATE),
// actualización de cantidad e inserción del movimiento con Commit/Rollback.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductoID string
	Tipo       string // entrada | salida | ajuste
	Cantidad   int64  // magnitud, siempre positiva
	UsuarioID  string // usuario que ejecuta la acción; vacío = anónimo
	Nota       string
}

// RegisterMovement aplica un movimiento sobre el stock del producto.
//
// Semántica por tipo:
//   - entrada: cantidad += q
//   - salida:  falla con ErrInsufficientStock si q > cantidad; si no, cantidad -= q
//   - ajuste:  cantidad += q (mismo efecto que entrada; ver entity.MovementTypeAjuste)
//
// En caso de éxito queda exactamente una fila de movimiento y la cantidad
// actualizada, confirmadas en la misma transacción. En caso de error no hay
// ningún cambio de estado.
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Tipo) || in.Cantidad <= 0 || in.ProductoID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-chequeo fuera de la tx para responder 404 sin abrir transacción.
	product, err := uc.productRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var mov *entity.InventoryMovement
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar movimientos concurrentes.
		locked, err := productRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newCantidad, err := applyTipo(locked.Cantidad, in.Tipo, in.Cantidad)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateCantidad(locked.ID, newCantidad); err != nil {
			return err
		}
		mov = newMovement(locked.ID, in.Tipo, in.Cantidad, in.UsuarioID, in.Nota)
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(mov), nil
}

// applyTipo calcula la nueva cantidad según el tipo de movimiento.
func applyTipo(current int64, tipo string, cantidad int64) (int64, error) {
	switch tipo {
	case entity.MovementTypeSalida:
		if cantidad > current {
			return 0, domain.ErrInsufficientStock
		}
		return current - cantidad, nil
	default: // entrada y ajuste suman
		return current + cantidad, nil
	}
}

// newMovement arma la fila de movimiento con fecha = ahora.
func newMovement(productoID, tipo string, cantidad int64, usuarioID, nota string) *entity.InventoryMovement {
	now := time.Now()
	var usuario *string
	if usuarioID != "" {
		usuario = &usuarioID
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

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:         m.ID,
		ProductoID: m.ProductoID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Fecha:      m.Fecha,
		UsuarioID:  m.UsuarioID,
		Nota:       m.Nota,
	}
}
