package interfaces

import (
	"context"
	"indt_seguros/internal/domain/entities"
)

// IContratacaoRepository abstracts persistence for Contratacao.

type IContratacaoRepository interface {
	ObterPorID(ctx context.Context, id int64) (*entities.Contratacao, error)
	Listar(ctx context.Context) ([]entities.Contratacao, error)
	Inserir(ctx context.Context, c entities.Contratacao) (int64, error)
}
