package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/authz"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func TestIsAuthorized_RolPermitido(t *testing.T) {
	assert.True(t, authz.IsAuthorized(entity.RoleSuperAdmin, entity.RoleSuperAdmin))
	assert.True(t, authz.IsAuthorized(entity.RoleAlmacenista, entity.RoleSuperAdmin, entity.RoleAlmacenista))
}

func TestIsAuthorized_RolNoPermitido(t *testing.T) {
	assert.False(t, authz.IsAuthorized(entity.RoleConsultor, entity.RoleSuperAdmin, entity.RoleAlmacenista))
	assert.False(t, authz.IsAuthorized("rol-inexistente", entity.RoleSuperAdmin))
}

func TestIsAuthorized_RolVacioSiempreDenegado(t *testing.T) {
	assert.False(t, authz.IsAuthorized("", entity.RoleSuperAdmin))
	// Incluso si la lista de permitidos incluyera vacío por error de configuración.
	assert.False(t, authz.IsAuthorized("", ""))
}

func TestIsAuthorized_ListaVacia(t *testing.T) {
	assert.False(t, authz.IsAuthorized(entity.RoleSuperAdmin))
}
