package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// RoleRepository puerto de persistencia para roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
