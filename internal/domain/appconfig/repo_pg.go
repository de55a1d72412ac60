package appconfig

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a PostgreSQL-backed app-config repository. The table
// holds a single row pinned to id 1.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *repoPG) Get(ctx context.Context) (*AppConfig, error) {
	var cfg AppConfig
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT clinic_name, email, phone, address, opening_hours, appointment_fee, updated_at
		FROM app_config WHERE id = 1`).
		Scan(&cfg.ClinicName, &cfg.Email, &cfg.Phone, &cfg.Address,
			&cfg.OpeningHours, &cfg.AppointmentFee, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Seeded by migration; an empty document is still a valid answer.
		return &AppConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repoPG) Save(ctx context.Context, cfg *AppConfig) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO app_config (id, clinic_name, email, phone, address, opening_hours, appointment_fee)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			clinic_name = EXCLUDED.clinic_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			opening_hours = EXCLUDED.opening_hours,
			appointment_fee = EXCLUDED.appointment_fee,
			updated_at = NOW()`,
		cfg.ClinicName, cfg.Email, cfg.Phone, cfg.Address, cfg.OpeningHours, cfg.AppointmentFee)
	return err
}
