package repository

import (
	"context"

	"indt_seguros/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxQuerier is the subset of *pgxpool.Pool used by the Postgres repositories.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ PgxQuerier = (*pgxpool.Pool)(nil)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS propostas (
        id           BIGSERIAL PRIMARY KEY,
        nome_cliente TEXT NOT NULL,
        produto      TEXT NOT NULL,
        premio       NUMERIC(18,2) NOT NULL,
        status       TEXT NOT NULL,
        data_criacao TIMESTAMPTZ NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS contratacoes (
        id               BIGSERIAL PRIMARY KEY,
        proposta_id      BIGINT NOT NULL REFERENCES propostas(id),
        data_contratacao TIMESTAMPTZ NOT NULL
    )`,
}

// EnsurePostgresSchema creates the tables when they do not exist.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return database.WithTx(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
