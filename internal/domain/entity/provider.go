package entity

import "time"

// Provider representa un proveedor. Un producto puede referenciar a lo sumo uno
// (proveedor_id nullable); eliminar un proveedor no arrastra sus productos.
type Provider struct {
	ID        string
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
