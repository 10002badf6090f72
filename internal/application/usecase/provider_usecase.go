package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProviderUseCase) Create(in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	provider := &entity.Provider{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProviderUseCase) GetByID(id string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return toProviderResponse(provider), nil
}

// Update edita un proveedor.
func (uc *ProviderUseCase) Update(id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		provider.Nombre = *in.Nombre
	}
	if in.Contacto != nil {
		provider.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		provider.Telefono = *in.Telefono
	}
	if in.Email != nil {
		provider.Email = *in.Email
	}
	provider.UpdatedAt = time.Now()
	if err := uc.repo.Update(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// List lista proveedores con paginación.
func (uc *ProviderUseCase) List(limit, offset int) (*dto.ProviderListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return &dto.ProviderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor. Los productos que lo referencian quedan sin
// proveedor (la FK es nullable); no hay cascada sobre productos.
func (uc *ProviderUseCase) Delete(id string) error {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Contacto:  p.Contacto,
		Telefono:  p.Telefono,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
