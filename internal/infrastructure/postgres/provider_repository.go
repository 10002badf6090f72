package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, nombre, contacto, telefono, email, created_at, updated_at`

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	pool *pgxpool.Pool
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	query := `
		INSERT INTO proveedores (` + providerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		provider.ID, provider.Nombre, provider.Contacto, provider.Telefono, provider.Email,
		provider.CreatedAt, provider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM proveedores WHERE id = $1`
	var p entity.Provider
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza un proveedor.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	query := `
		UPDATE proveedores SET nombre = $2, contacto = $3, telefono = $4, email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		provider.ID, provider.Nombre, provider.Contacto, provider.Telefono, provider.Email,
		provider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *ProviderRepo) List(limit, offset int) ([]*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM proveedores ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor. Los productos que lo referencian quedan con
// proveedor_id en NULL (ON DELETE SET NULL).
func (r *ProviderRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
