package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"indt_seguros/internal/domain/entities"
	mock_interfaces "indt_seguros/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPagamentoAppService_PagarPremio_Validations(t *testing.T) {
	t.Run("invalid json payload", func(t *testing.T) {
		svc := NewPagamentoAppService(nil, nil, nil)
		_, err := svc.PagarPremio(context.Background(), 1, json.RawMessage(`{`))
		if !errors.Is(err, ErrPayloadPagamentoInvalido) {
			t.Fatalf("expected ErrPayloadPagamentoInvalido, got %v", err)
		}
	})

	t.Run("payload is not an object", func(t *testing.T) {
		svc := NewPagamentoAppService(nil, nil, nil)
		_, err := svc.PagarPremio(context.Background(), 1, json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrPayloadPagamentoInvalido) {
			t.Fatalf("expected ErrPayloadPagamentoInvalido, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		svc := NewPagamentoAppService(nil, nil, nil)
		_, err := svc.PagarPremio(context.Background(), 1, nil)
		if !errors.Is(err, ErrGatewayNaoConfigurado) {
			t.Fatalf("expected ErrGatewayNaoConfigurado, got %v", err)
		}
	})
}

func TestPagamentoAppService_PagarPremio_Lookups(t *testing.T) {
	t.Run("contratacao not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contratacaoRepo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		svc := NewPagamentoAppService(contratacaoRepo, propostaRepo, gateway)

		contratacaoRepo.EXPECT().ObterPorID(gomock.Any(), int64(7)).Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.PagarPremio(context.Background(), 7, json.RawMessage(`{}`))
		if !errors.Is(err, ErrContratacaoNaoEncontrada) {
			t.Fatalf("expected ErrContratacaoNaoEncontrada, got %v", err)
		}
	})

	t.Run("proposta not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contratacaoRepo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		svc := NewPagamentoAppService(contratacaoRepo, propostaRepo, gateway)

		contratacaoRepo.EXPECT().ObterPorID(gomock.Any(), int64(7)).Return(&entities.Contratacao{ID: 7, PropostaID: 3}, nil)
		propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(3)).Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.PagarPremio(context.Background(), 7, json.RawMessage(`{}`))
		if !errors.Is(err, ErrPropostaNaoEncontrada) {
			t.Fatalf("expected ErrPropostaNaoEncontrada, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contratacaoRepo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		svc := NewPagamentoAppService(contratacaoRepo, nil, gateway)

		contratacaoRepo.EXPECT().ObterPorID(gomock.Any(), int64(7)).Return(nil, errors.New("db"))

		if _, err := svc.PagarPremio(context.Background(), 7, nil); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPagamentoAppService_PagarPremio_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	contratacaoRepo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
	propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	svc := NewPagamentoAppService(contratacaoRepo, propostaRepo, gateway)

	premio := decimal.RequireFromString("150.75")
	contratacaoRepo.EXPECT().ObterPorID(gomock.Any(), int64(7)).Return(&entities.Contratacao{ID: 7, PropostaID: 3}, nil)
	propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(3)).Return(&entities.Proposta{ID: 3, NomeCliente: "Ana", Produto: "Vida", Premio: premio, Status: entities.StatusPropostaAprovada}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("payload not json: %v", err)
			}
			if m["transaction_amount"] != 150.75 {
				t.Fatalf("unexpected amount: %v", m["transaction_amount"])
			}
			if m["external_reference"] != "contratacao-7" {
				t.Fatalf("unexpected external_reference: %v", m["external_reference"])
			}
			if m["payment_method_id"] != "pix" {
				t.Fatalf("caller fields must be kept: %v", m)
			}
			if _, ok := m["description"]; !ok {
				t.Fatalf("expected description")
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1}`), nil
		},
	)

	res, err := svc.PagarPremio(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ContratacaoID != 7 || res.ProviderPaymentID != "mp-1" || res.ProviderStatus != "approved" || !res.Valor.Equal(premio) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if string(res.ProviderResponse) != `{"id":1}` {
		t.Fatalf("unexpected provider response: %s", res.ProviderResponse)
	}
}

func TestPagamentoAppService_PagarPremio_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	contratacaoRepo := mock_interfaces.NewMockIContratacaoRepository(ctrl)
	propostaRepo := mock_interfaces.NewMockIPropostaRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	svc := NewPagamentoAppService(contratacaoRepo, propostaRepo, gateway)

	contratacaoRepo.EXPECT().ObterPorID(gomock.Any(), int64(7)).Return(&entities.Contratacao{ID: 7, PropostaID: 3}, nil)
	propostaRepo.EXPECT().ObterPorID(gomock.Any(), int64(3)).Return(&entities.Proposta{ID: 3, Premio: decimal.NewFromInt(10)}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

	if _, err := svc.PagarPremio(context.Background(), 7, nil); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestOperacaoInvalidaError(t *testing.T) {
	if errors.Is(ErrPropostaNaoAprovada, ErrPropostaNaoEncontrada) {
		t.Fatalf("distinct failures must not match each other")
	}
	var opErr *OperacaoInvalidaError
	if !errors.As(ErrPropostaNaoEncontrada, &opErr) || opErr.Mensagem != "Proposta não encontrada." {
		t.Fatalf("unexpected error: %v", opErr)
	}
	if errors.Is(ErrGatewayNaoConfigurado, ErrOperacaoInvalida) {
		t.Fatalf("gateway error is not an invalid operation")
	}
}
