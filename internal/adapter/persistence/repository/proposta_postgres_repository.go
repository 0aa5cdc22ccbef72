package repository

import (
	"context"
	"errors"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PropostaPostgresRepository persists Proposta entities in PostgreSQL.
//
// premio travels as text so NUMERIC keeps its exact scale.
type PropostaPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IPropostaRepository = (*PropostaPostgresRepository)(nil)

func NewPropostaPostgresRepository(db PgxQuerier) *PropostaPostgresRepository {
	return &PropostaPostgresRepository{db: db}
}

const selectProposta = `SELECT id, nome_cliente, produto, premio::text, status, data_criacao FROM propostas`

func (r *PropostaPostgresRepository) Inserir(ctx context.Context, p entities.Proposta) (int64, error) {
	const query = `
        INSERT INTO propostas (nome_cliente, produto, premio, status, data_criacao)
        VALUES ($1, $2, $3::numeric, $4, $5)
        RETURNING id
    `

	var id int64
	err := r.db.QueryRow(ctx, query, p.NomeCliente, p.Produto, p.Premio.String(), string(p.Status), p.DataCriacao.UTC()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PropostaPostgresRepository) ObterPorID(ctx context.Context, id int64) (*entities.Proposta, error) {
	p, err := scanProposta(r.db.QueryRow(ctx, selectProposta+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropostaPostgresRepository) Listar(ctx context.Context) ([]entities.Proposta, error) {
	rows, err := r.db.Query(ctx, selectProposta+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	propostas := []entities.Proposta{}
	for rows.Next() {
		p, err := scanProposta(rows)
		if err != nil {
			return nil, err
		}
		propostas = append(propostas, p)
	}
	return propostas, rows.Err()
}

// AtualizarStatus moves the proposal from de to para only if it still holds de.
func (r *PropostaPostgresRepository) AtualizarStatus(ctx context.Context, id int64, de, para entities.StatusProposta) error {
	tag, err := r.db.Exec(ctx, `UPDATE propostas SET status = $2 WHERE id = $1 AND status = $3`, id, string(para), string(de))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrStatusDivergente
	}
	return nil
}

func scanProposta(row pgx.Row) (entities.Proposta, error) {
	var (
		p      entities.Proposta
		premio string
		status string
	)
	if err := row.Scan(&p.ID, &p.NomeCliente, &p.Produto, &premio, &status, &p.DataCriacao); err != nil {
		return entities.Proposta{}, err
	}
	v, err := decimal.NewFromString(premio)
	if err != nil {
		return entities.Proposta{}, err
	}
	p.Premio = v
	p.Status = entities.StatusProposta(status)
	p.DataCriacao = p.DataCriacao.UTC()
	return p, nil
}
