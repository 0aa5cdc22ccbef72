package response

import (
	"time"

	"indt_seguros/internal/usecase/dto"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type IDResponse struct {
	ID int64 `json:"id"`
}

type PropostaResponse struct {
	ID          int64           `json:"id"`
	NomeCliente string          `json:"nomeCliente"`
	Produto     string          `json:"produto"`
	Premio      decimal.Decimal `json:"premio" swaggertype:"number"`
	Status      string          `json:"status"`
	DataCriacao time.Time       `json:"dataCriacao"`
}

func FromPropostaDTO(d dto.PropostaDTO) PropostaResponse {
	return PropostaResponse{
		ID:          d.ID,
		NomeCliente: d.NomeCliente,
		Produto:     d.Produto,
		Premio:      d.Premio,
		Status:      d.Status,
		DataCriacao: d.DataCriacao,
	}
}

func FromPropostaDTOs(ds []dto.PropostaDTO) []PropostaResponse {
	out := lo.Map(ds, func(d dto.PropostaDTO, _ int) PropostaResponse {
		return FromPropostaDTO(d)
	})
	if out == nil {
		return []PropostaResponse{}
	}
	return out
}

func init() {
	// premio and valor are JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
