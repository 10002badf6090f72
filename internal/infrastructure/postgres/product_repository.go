package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, descripcion, sku, cantidad, stock_minimo, precio_compra, precio_venta, proveedor_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Descripcion, product.SKU,
		product.Cantidad, product.StockMinimo, product.PrecioCompra, product.PrecioVenta,
		product.ProveedorID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get producto by sku")
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción; serializa movimientos
// concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "lock producto")
}

// Update actualiza un producto existente (incluida cantidad: las rutas de
// edición sintetizan el movimiento correspondiente en la misma tx).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, sku = $4, cantidad = $5, stock_minimo = $6,
		    precio_compra = $7, precio_venta = $8, proveedor_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Descripcion, product.SKU,
		product.Cantidad, product.StockMinimo, product.PrecioCompra, product.PrecioVenta,
		product.ProveedorID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateCantidad actualiza solo el stock del producto (usado por el motor de movimientos).
func (r *ProductRepo) UpdateCantidad(id string, cantidad int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad: %w", err)
	}
	return nil
}

// List lista productos con paginación, por nombre ascendente.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto por ID. Los movimientos se eliminan aparte,
// dentro de la misma transacción (ver ProductUseCase.Delete).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.SKU, &p.Cantidad, &p.StockMinimo,
		&p.PrecioCompra, &p.PrecioVenta, &p.ProveedorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.SKU, &p.Cantidad, &p.StockMinimo,
			&p.PrecioCompra, &p.PrecioVenta, &p.ProveedorID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
