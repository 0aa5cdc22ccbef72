package entities

import "time"

// Contratacao is the contract created from an approved Proposta.
//
// The approval of the referenced proposal is checked only at creation time.
type Contratacao struct {
	ID              int64     `json:"id"`
	PropostaID      int64     `json:"proposta_id"`
	DataContratacao time.Time `json:"data_contratacao"`
}

func NewContratacao(propostaID int64) Contratacao {
	return Contratacao{
		PropostaID:      propostaID,
		DataContratacao: time.Now().UTC(),
	}
}
