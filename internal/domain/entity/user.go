package entity

import "time"

// User representa un usuario del sistema. RoleID referencia un Role existente.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       string
	RoleName     string // cargado por join en lecturas; vacío en escrituras
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
