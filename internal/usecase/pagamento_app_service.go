package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"indt_seguros/internal/usecase/dto"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// IPagamentoAppService charges the premium of a contratação through the payment provider.

type IPagamentoAppService interface {
	PagarPremio(ctx context.Context, contratacaoID int64, payload json.RawMessage) (dto.PagamentoDTO, error)
}

type PagamentoAppService struct {
	contratacaoRepo interfaces.IContratacaoRepository
	propostaRepo    interfaces.IPropostaRepository
	gateway         interfaces.IPaymentGateway
}

var _ IPagamentoAppService = (*PagamentoAppService)(nil)

func NewPagamentoAppService(contratacaoRepo interfaces.IContratacaoRepository, propostaRepo interfaces.IPropostaRepository, gateway interfaces.IPaymentGateway) *PagamentoAppService {
	return &PagamentoAppService{contratacaoRepo: contratacaoRepo, propostaRepo: propostaRepo, gateway: gateway}
}

func (s *PagamentoAppService) PagarPremio(ctx context.Context, contratacaoID int64, payload json.RawMessage) (dto.PagamentoDTO, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "pagamento").Int64("contratacao_id", contratacaoID).Logger()

	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		logger.Warn().Int("payload_len", len(payload)).Msg("invalid payload")
		return dto.PagamentoDTO{}, ErrPayloadPagamentoInvalido
	}
	if s.gateway == nil {
		logger.Error().Msg("gateway not configured")
		return dto.PagamentoDTO{}, ErrGatewayNaoConfigurado
	}

	c, err := s.contratacaoRepo.ObterPorID(ctx, contratacaoID)
	if err != nil {
		return dto.PagamentoDTO{}, err
	}
	if c == nil {
		logger.Warn().Msg("contratacao not found")
		return dto.PagamentoDTO{}, ErrContratacaoNaoEncontrada
	}

	p, err := s.propostaRepo.ObterPorID(ctx, c.PropostaID)
	if err != nil {
		return dto.PagamentoDTO{}, err
	}
	if p == nil {
		logger.Warn().Int64("proposta_id", c.PropostaID).Msg("proposta not found")
		return dto.PagamentoDTO{}, ErrPropostaNaoEncontrada
	}

	// The premium stored with the proposal is the source of truth for the amount.
	reqMap["transaction_amount"] = p.Premio.InexactFloat64()
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("contratacao-%d", c.ID)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Prêmio %s - %s", p.Produto, p.NomeCliente)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return dto.PagamentoDTO{}, err
	}

	providerID, providerStatus, providerResp, err := s.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		logger.Error().Err(err).Msg("payment gateway failed")
		return dto.PagamentoDTO{}, err
	}
	logger.Info().Str("provider_payment_id", providerID).Str("provider_status", providerStatus).Msg("premio cobrado")

	return dto.PagamentoDTO{
		ContratacaoID:     c.ID,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		Valor:             p.Premio,
		ProviderResponse:  providerResp,
	}, nil
}
