package request

import (
	"encoding/json"

	"indt_seguros/internal/usecase/dto"
)

// ContratarPropostaRequest is the payload of POST /contratacoes.
type ContratarPropostaRequest struct {
	PropostaID int64 `json:"propostaId" binding:"required,gt=0"`
}

func (r ContratarPropostaRequest) ToDTO() dto.ContratarPropostaRequest {
	return dto.ContratarPropostaRequest{PropostaID: r.PropostaID}
}

// PagamentoPremioRequest is the optional envelope of POST /contratacoes/{id}/pagamento.
//
// mp_payload is forwarded to Mercado Pago after the amount is filled in.
type PagamentoPremioRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
