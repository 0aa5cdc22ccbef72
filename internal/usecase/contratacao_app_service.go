package usecase

import (
	"context"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/dto"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// IContratacaoAppService turns approved proposals into contracts.

type IContratacaoAppService interface {
	Contratar(ctx context.Context, req dto.ContratarPropostaRequest) (int64, error)
	ObterPorID(ctx context.Context, id int64) (*dto.ContratacaoDTO, error)
	Listar(ctx context.Context) ([]dto.ContratacaoDTO, error)
}

type ContratacaoAppService struct {
	repo         interfaces.IContratacaoRepository
	propostaRepo interfaces.IPropostaRepository
}

var _ IContratacaoAppService = (*ContratacaoAppService)(nil)

func NewContratacaoAppService(repo interfaces.IContratacaoRepository, propostaRepo interfaces.IPropostaRepository) *ContratacaoAppService {
	return &ContratacaoAppService{repo: repo, propostaRepo: propostaRepo}
}

// Contratar creates a contract for an approved proposal and returns its id.
//
// The approval check and the insert are not atomic: a concurrent status
// change between them is not detected.
func (s *ContratacaoAppService) Contratar(ctx context.Context, req dto.ContratarPropostaRequest) (int64, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "contratacao").Int64("proposta_id", req.PropostaID).Logger()

	p, err := s.propostaRepo.ObterPorID(ctx, req.PropostaID)
	if err != nil {
		logger.Error().Err(err).Msg("failed loading proposta")
		return 0, err
	}
	if p == nil {
		logger.Warn().Msg("proposta not found")
		return 0, ErrPropostaNaoEncontrada
	}
	if !p.Aprovada() {
		logger.Warn().Str("status", p.Status.String()).Msg("proposta not approved")
		return 0, ErrPropostaNaoAprovada
	}

	id, err := s.repo.Inserir(ctx, entities.NewContratacao(req.PropostaID))
	if err != nil {
		logger.Error().Err(err).Msg("insert failed")
		return 0, err
	}
	logger.Info().Int64("contratacao_id", id).Msg("contratacao criada")
	return id, nil
}

// ObterPorID returns (nil, nil) when the contract does not exist.
func (s *ContratacaoAppService) ObterPorID(ctx context.Context, id int64) (*dto.ContratacaoDTO, error) {
	c, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toContratacaoDTO(*c)
	return &out, nil
}

func (s *ContratacaoAppService) Listar(ctx context.Context) ([]dto.ContratacaoDTO, error) {
	contratacoes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(contratacoes, func(c entities.Contratacao, _ int) dto.ContratacaoDTO {
		return toContratacaoDTO(c)
	}), nil
}

func toContratacaoDTO(c entities.Contratacao) dto.ContratacaoDTO {
	return dto.ContratacaoDTO{
		ID:              c.ID,
		PropostaID:      c.PropostaID,
		DataContratacao: c.DataContratacao,
	}
}
