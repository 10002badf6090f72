package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ListMovementsUseCase consulta el historial de movimientos con filtros
// opcionales de tipo y rango de fechas.
type ListMovementsUseCase struct {
	movRepo repository.InventoryMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.InventoryMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// MovementQuery filtros crudos tal como llegan de la capa de presentación.
// From/To son strings sin parsear: un valor ilegible se ignora en silencio
// (política permisiva del sistema original, equivale a "sin cota").
type MovementQuery struct {
	Tipo   string
	From   string
	To     string
	Limit  int
	Offset int
}

// List devuelve movimientos ordenados por fecha descendente.
func (uc *ListMovementsUseCase) List(ctx context.Context, q MovementQuery) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{
		Tipo: q.Tipo,
		From: ParseFecha(q.From),
		To:   ParseFecha(q.To),
	}
	list, err := uc.movRepo.List(filter, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// fechaLayouts formatos aceptados para los filtros de fecha, en orden de prueba.
var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFecha intenta parsear un filtro de fecha. Devuelve nil si el valor está
// vacío o no es parseable; el caller lo trata como cota ausente.
func ParseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
