package response

import (
	"encoding/json"
	"time"

	"indt_seguros/internal/usecase/dto"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ContratacaoResponse struct {
	ID              int64     `json:"id"`
	PropostaID      int64     `json:"propostaId"`
	DataContratacao time.Time `json:"dataContratacao"`
}

func FromContratacaoDTO(d dto.ContratacaoDTO) ContratacaoResponse {
	return ContratacaoResponse{
		ID:              d.ID,
		PropostaID:      d.PropostaID,
		DataContratacao: d.DataContratacao,
	}
}

func FromContratacaoDTOs(ds []dto.ContratacaoDTO) []ContratacaoResponse {
	out := lo.Map(ds, func(d dto.ContratacaoDTO, _ int) ContratacaoResponse {
		return FromContratacaoDTO(d)
	})
	if out == nil {
		return []ContratacaoResponse{}
	}
	return out
}

type PagamentoResponse struct {
	ContratacaoID     int64           `json:"contratacaoId"`
	ProviderPaymentID string          `json:"providerPaymentId"`
	ProviderStatus    string          `json:"providerStatus"`
	Valor             decimal.Decimal `json:"valor" swaggertype:"number"`
	ProviderResponse  json.RawMessage `json:"providerResponse,omitempty" swaggertype:"object"`
}

func FromPagamentoDTO(d dto.PagamentoDTO) PagamentoResponse {
	res := PagamentoResponse{
		ContratacaoID:     d.ContratacaoID,
		ProviderPaymentID: d.ProviderPaymentID,
		ProviderStatus:    d.ProviderStatus,
		Valor:             d.Valor,
	}
	if len(d.ProviderResponse) > 0 && json.Valid(d.ProviderResponse) {
		res.ProviderResponse = json.RawMessage(d.ProviderResponse)
	}
	return res
}
