package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProviderRepository puerto de persistencia para proveedores.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	Update(provider *entity.Provider) error
	List(limit, offset int) ([]*entity.Provider, error)
	Delete(id string) error
}
