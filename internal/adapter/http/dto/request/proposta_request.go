package request

import (
	"errors"
	"strings"

	"indt_seguros/internal/usecase/dto"

	"github.com/shopspring/decimal"
)

var (
	ErrNomeClienteObrigatorio = errors.New("nomeCliente is required")
	ErrProdutoObrigatorio     = errors.New("produto is required")
	ErrPremioInvalido         = errors.New("premio must be non-negative with at most 2 decimal places")
)

// premioScale matches the NUMERIC(18,2) column of the SQL store.
const premioScale = 2

// CriarPropostaRequest is the payload of POST /propostas.
type CriarPropostaRequest struct {
	NomeCliente string           `json:"nomeCliente" binding:"required"`
	Produto     string           `json:"produto" binding:"required"`
	Premio      *decimal.Decimal `json:"premio" binding:"required" swaggertype:"number"`
}

func (r CriarPropostaRequest) Validate() error {
	if strings.TrimSpace(r.NomeCliente) == "" {
		return ErrNomeClienteObrigatorio
	}
	if strings.TrimSpace(r.Produto) == "" {
		return ErrProdutoObrigatorio
	}
	if r.Premio == nil || r.Premio.IsNegative() || !r.Premio.Equal(r.Premio.Round(premioScale)) {
		return ErrPremioInvalido
	}
	return nil
}

func (r CriarPropostaRequest) ToDTO() dto.CriarPropostaRequest {
	out := dto.CriarPropostaRequest{
		NomeCliente: strings.TrimSpace(r.NomeCliente),
		Produto:     strings.TrimSpace(r.Produto),
	}
	if r.Premio != nil {
		out.Premio = *r.Premio
	}
	return out
}
