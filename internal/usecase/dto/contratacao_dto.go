package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContratarPropostaRequest struct {
	PropostaID int64
}

type ContratacaoDTO struct {
	ID              int64
	PropostaID      int64
	DataContratacao time.Time
}

// PagamentoDTO summarizes a premium charge sent to the payment provider.
type PagamentoDTO struct {
	ContratacaoID     int64
	ProviderPaymentID string
	ProviderStatus    string
	Valor             decimal.Decimal
	ProviderResponse  []byte
}
