package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CriarPropostaRequest struct {
	NomeCliente string
	Produto     string
	Premio      decimal.Decimal
}

// PropostaDTO is the read model of a proposal. Status carries the
// string form of entities.StatusProposta.
type PropostaDTO struct {
	ID          int64
	NomeCliente string
	Produto     string
	Premio      decimal.Decimal
	Status      string
	DataCriacao time.Time
}
