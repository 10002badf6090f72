package entity

// Nombres de rol válidos. Datos de referencia estáticos, creados en el seed.
const (
	RoleSuperAdmin  = "Super-Administrador" // acceso total
	RoleAlmacenista = "Almacenista"         // gestiona productos y movimientos
	RoleConsultor   = "Consultor"           // solo lectura
)

// Role representa un rol del sistema (referenciado por User, nunca eliminado en cascada).
type Role struct {
	ID          string
	Name        string // único
	Description string
}
