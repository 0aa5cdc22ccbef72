package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusProposta represents the lifecycle of an insurance proposal.
//
// Propostas start EmAnalise; the approval workflow moves them to Aprovada or
// Rejeitada, both terminal. Aprovada is the only status accepted by contratação.
type StatusProposta string

const (
	StatusPropostaEmAnalise StatusProposta = "EmAnalise"
	StatusPropostaAprovada  StatusProposta = "Aprovada"
	StatusPropostaRejeitada StatusProposta = "Rejeitada"
)

func (s StatusProposta) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s StatusProposta) Valid() bool {
	switch s {
	case StatusPropostaEmAnalise, StatusPropostaAprovada, StatusPropostaRejeitada:
		return true
	}
	return false
}

// PodeTransicionarPara reports whether the approval workflow may move a
// proposal from s to next.
func (s StatusProposta) PodeTransicionarPara(next StatusProposta) bool {
	if s != StatusPropostaEmAnalise {
		return false
	}
	return next == StatusPropostaAprovada || next == StatusPropostaRejeitada
}

// Proposta is the insurance proposal (proposta de seguro).
//
// Monetary representation:
//   - Premio is kept as a decimal to avoid float rounding on premiums.
type Proposta struct {
	ID          int64           `json:"id"`
	NomeCliente string          `json:"nome_cliente"`
	Produto     string          `json:"produto"`
	Premio      decimal.Decimal `json:"premio"`
	Status      StatusProposta  `json:"status"`
	DataCriacao time.Time       `json:"data_criacao"`
}

// NewProposta builds a proposal awaiting analysis, stamped with the current UTC time.
func NewProposta(nomeCliente, produto string, premio decimal.Decimal) Proposta {
	return Proposta{
		NomeCliente: nomeCliente,
		Produto:     produto,
		Premio:      premio,
		Status:      StatusPropostaEmAnalise,
		DataCriacao: time.Now().UTC(),
	}
}

func (p Proposta) Aprovada() bool {
	return p.Status == StatusPropostaAprovada
}
