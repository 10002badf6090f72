package dto

import "time"

// CreateProviderRequest alta de proveedor.
type CreateProviderRequest struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// UpdateProviderRequest edición parcial de proveedor.
type UpdateProviderRequest struct {
	Nombre   *string `json:"nombre"`
	Contacto *string `json:"contacto"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"`
}

// ProviderResponse representación de un proveedor.
type ProviderResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Contacto  string    `json:"contacto"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderListResponse listado paginado de proveedores.
type ProviderListResponse struct {
	Items []ProviderResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
