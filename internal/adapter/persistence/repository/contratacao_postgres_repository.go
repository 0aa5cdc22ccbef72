package repository

import (
	"context"
	"errors"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

// ContratacaoPostgresRepository persists Contratacao entities in PostgreSQL.
type ContratacaoPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IContratacaoRepository = (*ContratacaoPostgresRepository)(nil)

func NewContratacaoPostgresRepository(db PgxQuerier) *ContratacaoPostgresRepository {
	return &ContratacaoPostgresRepository{db: db}
}

const selectContratacao = `SELECT id, proposta_id, data_contratacao FROM contratacoes`

func (r *ContratacaoPostgresRepository) Inserir(ctx context.Context, c entities.Contratacao) (int64, error) {
	const query = `
        INSERT INTO contratacoes (proposta_id, data_contratacao)
        VALUES ($1, $2)
        RETURNING id
    `

	var id int64
	if err := r.db.QueryRow(ctx, query, c.PropostaID, c.DataContratacao.UTC()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ContratacaoPostgresRepository) ObterPorID(ctx context.Context, id int64) (*entities.Contratacao, error) {
	c, err := scanContratacao(r.db.QueryRow(ctx, selectContratacao+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContratacaoPostgresRepository) Listar(ctx context.Context) ([]entities.Contratacao, error) {
	rows, err := r.db.Query(ctx, selectContratacao+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contratacoes := []entities.Contratacao{}
	for rows.Next() {
		c, err := scanContratacao(rows)
		if err != nil {
			return nil, err
		}
		contratacoes = append(contratacoes, c)
	}
	return contratacoes, rows.Err()
}

func scanContratacao(row pgx.Row) (entities.Contratacao, error) {
	var c entities.Contratacao
	if err := row.Scan(&c.ID, &c.PropostaID, &c.DataContratacao); err != nil {
		return entities.Contratacao{}, err
	}
	c.DataContratacao = c.DataContratacao.UTC()
	return c, nil
}
