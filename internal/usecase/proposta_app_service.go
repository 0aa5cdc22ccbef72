package usecase

import (
	"context"
	"errors"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/dto"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// IPropostaAppService exposes the proposal operations.
//
//   - POST /propostas => Criar()
//   - GET /propostas, GET /propostas/{id} => Listar(), ObterPorID()
//   - PATCH /propostas/{id}/aprovar|rejeitar => Aprovar(), Rejeitar()

type IPropostaAppService interface {
	Criar(ctx context.Context, req dto.CriarPropostaRequest) (int64, error)
	Listar(ctx context.Context) ([]dto.PropostaDTO, error)
	ObterPorID(ctx context.Context, id int64) (*dto.PropostaDTO, error)
	Aprovar(ctx context.Context, id int64) (dto.PropostaDTO, error)
	Rejeitar(ctx context.Context, id int64) (dto.PropostaDTO, error)
}

type PropostaAppService struct {
	repo interfaces.IPropostaRepository
}

var _ IPropostaAppService = (*PropostaAppService)(nil)

func NewPropostaAppService(repo interfaces.IPropostaRepository) *PropostaAppService {
	return &PropostaAppService{repo: repo}
}

// Criar persists a new proposal. The status is always EmAnalise, whatever the request carries.
func (s *PropostaAppService) Criar(ctx context.Context, req dto.CriarPropostaRequest) (int64, error) {
	p := entities.NewProposta(req.NomeCliente, req.Produto, req.Premio)

	id, err := s.repo.Inserir(ctx, p)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("component", "proposta").Msg("insert failed")
		return 0, err
	}
	zerolog.Ctx(ctx).Info().Str("component", "proposta").Int64("proposta_id", id).Str("produto", p.Produto).Msg("proposta criada")
	return id, nil
}

func (s *PropostaAppService) Listar(ctx context.Context) ([]dto.PropostaDTO, error) {
	propostas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(propostas, func(p entities.Proposta, _ int) dto.PropostaDTO {
		return toPropostaDTO(p)
	}), nil
}

// ObterPorID returns (nil, nil) when the proposal does not exist.
func (s *PropostaAppService) ObterPorID(ctx context.Context, id int64) (*dto.PropostaDTO, error) {
	p, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toPropostaDTO(*p)
	return &out, nil
}

func (s *PropostaAppService) Aprovar(ctx context.Context, id int64) (dto.PropostaDTO, error) {
	return s.alterarStatus(ctx, id, entities.StatusPropostaAprovada)
}

func (s *PropostaAppService) Rejeitar(ctx context.Context, id int64) (dto.PropostaDTO, error) {
	return s.alterarStatus(ctx, id, entities.StatusPropostaRejeitada)
}

func (s *PropostaAppService) alterarStatus(ctx context.Context, id int64, status entities.StatusProposta) (dto.PropostaDTO, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "proposta").Int64("proposta_id", id).Logger()

	p, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		return dto.PropostaDTO{}, err
	}
	if p == nil {
		logger.Warn().Msg("proposta not found")
		return dto.PropostaDTO{}, ErrPropostaNaoEncontrada
	}
	if !p.Status.PodeTransicionarPara(status) {
		logger.Warn().Str("from", p.Status.String()).Str("to", status.String()).Msg("invalid status transition")
		return dto.PropostaDTO{}, ErrTransicaoStatusInvalida
	}

	if err := s.repo.AtualizarStatus(ctx, id, p.Status, status); err != nil {
		if errors.Is(err, interfaces.ErrStatusDivergente) {
			logger.Warn().Str("from", p.Status.String()).Str("to", status.String()).Msg("status changed concurrently")
			return dto.PropostaDTO{}, ErrTransicaoStatusInvalida
		}
		logger.Error().Err(err).Msg("status update failed")
		return dto.PropostaDTO{}, err
	}
	logger.Info().Str("from", p.Status.String()).Str("to", status.String()).Msg("status alterado")

	p.Status = status
	return toPropostaDTO(*p), nil
}

func toPropostaDTO(p entities.Proposta) dto.PropostaDTO {
	return dto.PropostaDTO{
		ID:          p.ID,
		NomeCliente: p.NomeCliente,
		Produto:     p.Produto,
		Premio:      p.Premio,
		Status:      p.Status.String(),
		DataCriacao: p.DataCriacao,
	}
}
