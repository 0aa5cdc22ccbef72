package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/dto"
	mock_interfaces "indt_seguros/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestContratacaoAppService_Contratar(t *testing.T) {
	t.Run("proposta nao encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		svc := NewContratacaoAppService(repo, propostaRepo)

		propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(10)).Return(nil, nil)
		repo.EXPECT().Inserir(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Contratar(context.Background(), dto.ContratarPropostaRequest{PropostaID: 10})
		if !errors.Is(err, ErrOperacaoInvalida) {
			t.Fatalf("expected invalid operation, got %v", err)
		}
		if err.Error() != "Proposta não encontrada." {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	for _, status := range []entities.StatusProposta{entities.StatusPropostaEmAnalise, entities.StatusPropostaRejeitada} {
		t.Run("proposta nao aprovada "+status.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
			propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
			svc := NewContratacaoAppService(repo, propostaRepo)

			p := entities.NewProposta("Cliente", "Produto", decimal.NewFromInt(100))
			p.ID = 20
			p.Status = status
			propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(20)).Return(&p, nil)
			repo.EXPECT().Inserir(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Contratar(context.Background(), dto.ContratarPropostaRequest{PropostaID: 20})
			if !errors.Is(err, ErrOperacaoInvalida) || !errors.Is(err, ErrPropostaNaoAprovada) {
				t.Fatalf("expected ErrPropostaNaoAprovada, got %v", err)
			}
			if err.Error() != "Somente propostas aprovadas podem ser contratadas." {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}

	t.Run("proposta repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		svc := NewContratacaoAppService(repo, propostaRepo)

		dbErr := errors.New("db")
		propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(5)).Return(nil, dbErr)
		repo.EXPECT().Inserir(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Contratar(context.Background(), dto.ContratarPropostaRequest{PropostaID: 5})
		if !errors.Is(err, dbErr) || errors.Is(err, ErrOperacaoInvalida) {
			t.Fatalf("expected raw db error, got %v", err)
		}
	})

	t.Run("proposta aprovada cria contratacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		svc := NewContratacaoAppService(repo, propostaRepo)

		p := entities.NewProposta("Cliente", "Produto", decimal.NewFromInt(100))
		p.ID = 30
		p.Status = entities.StatusPropostaAprovada
		propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(30)).Return(&p, nil)
		repo.EXPECT().Inserir(gomock.Any(), gomock.AssignableToTypeOf(entities.Contratacao{})).DoAndReturn(
			func(_ context.Context, c entities.Contratacao) (int64, error) {
				if c.PropostaID != 30 {
					t.Fatalf("unexpected proposta id: %d", c.PropostaID)
				}
				if c.DataContratacao.IsZero() {
					t.Fatalf("expected DataContratacao")
				}
				return 99, nil
			},
		).Times(1)

		id, err := svc.Contratar(context.Background(), dto.ContratarPropostaRequest{PropostaID: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 99 {
			t.Fatalf("expected 99, got %d", id)
		}
	})

	t.Run("insert error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		svc := NewContratacaoAppService(repo, propostaRepo)

		propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(30)).Return(&entities.Proposta{ID: 30, Status: entities.StatusPropostaAprovada}, nil)
		repo.EXPECT().Inserir(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db"))

		if _, err := svc.Contratar(context.Background(), dto.ContratarPropostaRequest{PropostaID: 30}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestContratacaoAppService_ObterPorID(t *testing.T) {
	t.Run("not found returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		svc := NewContratacaoAppService(repo, nil)

		repo.EXPECT().ObterPorID(gomock.Any(), int64(1)).Return(nil, nil)

		res, err := svc.ObterPorID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != nil {
			t.Fatalf("expected nil, got %+v", res)
		}
	})

	t.Run("found maps to dto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		svc := NewContratacaoAppService(repo, nil)

		entidade := &entities.Contratacao{ID: 5, PropostaID: 123, DataContratacao: time.Now().UTC().Add(-15 * time.Minute)}
		repo.EXPECT().ObterPorID(gomock.Any(), int64(5)).Return(entidade, nil)

		res, err := svc.ObterPorID(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res == nil || res.ID != 5 || res.PropostaID != 123 || !res.DataContratacao.Equal(entidade.DataContratacao) {
			t.Fatalf("unexpected dto: %+v", res)
		}
	})
}

func TestContratacaoAppService_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
	svc := NewContratacaoAppService(repo, nil)

	now := time.Now().UTC()
	entidades := []entities.Contratacao{
		{ID: 1, PropostaID: 1, DataContratacao: now.Add(-10 * time.Minute)},
		{ID: 2, PropostaID: 2, DataContratacao: now.Add(-5 * time.Minute)},
	}
	repo.EXPECT().Listar(gomock.Any()).Return(entidades, nil)

	res, err := svc.Listar(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2, got %d", len(res))
	}
	for i := range entidades {
		if res[i].ID != entidades[i].ID || res[i].PropostaID != entidades[i].PropostaID || !res[i].DataContratacao.Equal(entidades[i].DataContratacao) {
			t.Fatalf("unexpected item %d: %+v", i, res[i])
		}
	}
}
