// Comando seed: recrea el esquema y carga datos de ejemplo (roles, usuarios,
// proveedores, productos y movimientos iniciales). Destructivo: hace DROP de
// las tablas existentes.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

const schema = `
DROP TABLE IF EXISTS movimientos_inventario;
DROP TABLE IF EXISTS productos;
DROP TABLE IF EXISTS proveedores;
DROP TABLE IF EXISTS usuarios;
DROP TABLE IF EXISTS roles;

CREATE TABLE roles (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE usuarios (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role_id       UUID NOT NULL REFERENCES roles(id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE proveedores (
	id         UUID PRIMARY KEY,
	nombre     TEXT NOT NULL,
	contacto   TEXT NOT NULL DEFAULT '',
	telefono   TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE productos (
	id            UUID PRIMARY KEY,
	nombre        TEXT NOT NULL,
	descripcion   TEXT NOT NULL DEFAULT '',
	sku           TEXT NOT NULL UNIQUE,
	cantidad      BIGINT NOT NULL DEFAULT 0 CHECK (cantidad >= 0),
	stock_minimo  BIGINT NOT NULL DEFAULT 1,
	precio_compra NUMERIC(14,2) NOT NULL DEFAULT 0,
	precio_venta  NUMERIC(14,2) NOT NULL DEFAULT 0,
	proveedor_id  UUID REFERENCES proveedores(id) ON DELETE SET NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE movimientos_inventario (
	id          UUID PRIMARY KEY,
	producto_id UUID NOT NULL REFERENCES productos(id),
	tipo        TEXT NOT NULL CHECK (tipo IN ('entrada', 'salida', 'ajuste')),
	cantidad    BIGINT NOT NULL CHECK (cantidad > 0),
	fecha       TIMESTAMPTZ NOT NULL DEFAULT now(),
	usuario_id  UUID REFERENCES usuarios(id) ON DELETE SET NULL,
	nota        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX idx_movimientos_fecha ON movimientos_inventario (fecha DESC);
CREATE INDEX idx_movimientos_producto ON movimientos_inventario (producto_id);
CREATE INDEX idx_productos_bajo_stock ON productos (cantidad) WHERE cantidad <= stock_minimo;
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema recreado")

	if err := seed(pool); err != nil {
		log.Fatal().Err(err).Msg("cargar datos de ejemplo")
	}
	log.Info().Msg("seed completo")
}

func seed(pool *pgxpool.Pool) error {
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)

	now := time.Now()

	// Roles
	rAdmin := &entity.Role{ID: uuid.New().String(), Name: entity.RoleSuperAdmin, Description: "Acceso total"}
	rAlm := &entity.Role{ID: uuid.New().String(), Name: entity.RoleAlmacenista, Description: "Gestiona productos y movimientos"}
	rCons := &entity.Role{ID: uuid.New().String(), Name: entity.RoleConsultor, Description: "Solo lectura"}
	for _, r := range []*entity.Role{rAdmin, rAlm, rCons} {
		if err := roleRepo.Create(r); err != nil {
			return err
		}
	}

	// Usuarios
	admin, err := newUser("admin", "admin@example.com", "admin123", rAdmin.ID, now)
	if err != nil {
		return err
	}
	almacen, err := newUser("almacen", "almacen@example.com", "almacen123", rAlm.ID, now)
	if err != nil {
		return err
	}
	consulta, err := newUser("consulta", "consulta@example.com", "consulta123", rCons.ID, now)
	if err != nil {
		return err
	}
	for _, u := range []*entity.User{admin, almacen, consulta} {
		if err := userRepo.Create(u); err != nil {
			return err
		}
	}

	// Proveedores
	provA := &entity.Provider{
		ID: uuid.New().String(), Nombre: "Proveedor A", Contacto: "Juan",
		Telefono: "999111222", Email: "provA@ejemplo.com", CreatedAt: now, UpdatedAt: now,
	}
	provB := &entity.Provider{
		ID: uuid.New().String(), Nombre: "Proveedor B", Contacto: "María",
		Telefono: "999333444", Email: "provB@ejemplo.com", CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []*entity.Provider{provA, provB} {
		if err := providerRepo.Create(p); err != nil {
			return err
		}
	}

	// Productos
	camiseta := &entity.Product{
		ID: uuid.New().String(), Nombre: "Camiseta", Descripcion: "Algodón", SKU: "SKU-001",
		Cantidad: 20, StockMinimo: 5,
		PrecioCompra: decimal.NewFromInt(10), PrecioVenta: decimal.NewFromInt(15),
		ProveedorID: &provA.ID, CreatedAt: now, UpdatedAt: now,
	}
	pantalon := &entity.Product{
		ID: uuid.New().String(), Nombre: "Pantalón", Descripcion: "Jean", SKU: "SKU-002",
		Cantidad: 3, StockMinimo: 5,
		PrecioCompra: decimal.NewFromInt(20), PrecioVenta: decimal.NewFromInt(30),
		ProveedorID: &provB.ID, CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []*entity.Product{camiseta, pantalon} {
		if err := productRepo.Create(p); err != nil {
			return err
		}
	}

	// Movimientos iniciales
	for _, m := range []*entity.InventoryMovement{
		newMovement(camiseta.ID, 20, admin.ID, now),
		newMovement(pantalon.ID, 3, admin.ID, now),
	} {
		if err := movementRepo.Create(m); err != nil {
			return err
		}
	}
	return nil
}

func newUser(username, email, password, roleID string, now time.Time) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func newMovement(productoID string, cantidad int64, userID string, now time.Time) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:         uuid.New().String(),
		ProductoID: productoID,
		Tipo:       entity.MovementTypeEntrada,
		Cantidad:   cantidad,
		Fecha:      now,
		UsuarioID:  &userID,
		Nota:       "Carga inicial",
		CreatedAt:  now,
	}
}
