package interfaces

import (
	"context"
	"errors"
	"indt_seguros/internal/domain/entities"
)

// ErrStatusDivergente is returned by AtualizarStatus when the proposal is
// missing or no longer holds the expected status.
var ErrStatusDivergente = errors.New("proposta ausente ou com status divergente")

// IPropostaRepository abstracts persistence for Proposta.
//
// ObterPorID returns (nil, nil) when the proposal does not exist.
// Listar returns proposals ordered by id.
// AtualizarStatus is a compare-and-set from de to para.

type IPropostaRepository interface {
	ObterPorID(ctx context.Context, id int64) (*entities.Proposta, error)
	Listar(ctx context.Context) ([]entities.Proposta, error)
	Inserir(ctx context.Context, p entities.Proposta) (int64, error)
	AtualizarStatus(ctx context.Context, id int64, de, para entities.StatusProposta) error
}
