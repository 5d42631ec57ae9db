package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// schema DDL de arranque. Las constraints reflejan las invariantes del
// dominio: unicidad global de name/code, FKs restrictivas (borrar una
// categoría con productos o un producto con movimientos falla en la BD
// aunque el chequeo de aplicación se saltara), stock nunca negativo y
// cantidades estrictamente positivas.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id            UUID PRIMARY KEY,
	code          TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	category_id   UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
	current_stock BIGINT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS stock_movements (
	id                   UUID PRIMARY KEY,
	product_id           UUID NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
	is_in                BOOLEAN NOT NULL,
	quantity             BIGINT NOT NULL CHECK (quantity > 0),
	timestamp            TIMESTAMPTZ NOT NULL,
	performed_by_user_id UUID NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id, timestamp DESC);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	roles         TEXT[] NOT NULL,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
`

// seedAdminEmail cuenta administradora creada si no existe ningún SystemAdmin.
const (
	seedAdminEmail    = "admin@warehouse.local"
	seedAdminPassword = "1234" // cambiar en el primer login; solo para arranque
)

// Bootstrap crea el esquema si no existe y siembra el administrador por defecto.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return seedAdmin(ctx, pool)
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(seedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleSystemAdmin},
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
