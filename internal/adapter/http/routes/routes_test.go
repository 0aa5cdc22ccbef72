package routes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"indt_seguros/internal/adapter/http/handlers"
	"indt_seguros/internal/adapter/http/handlers/mocks"
	"indt_seguros/internal/config"
	"indt_seguros/internal/usecase/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router      *gin.Engine
	proposta    *mocks.MockIPropostaAppService
	contratacao *mocks.MockIContratacaoAppService
	pagamento   *mocks.MockIPagamentoAppService
}

func newFixture(t *testing.T, health func(context.Context) error) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := routerFixture{
		proposta:    mocks.NewMockIPropostaAppService(ctrl),
		contratacao: mocks.NewMockIContratacaoAppService(ctrl),
		pagamento:   mocks.NewMockIPagamentoAppService(ctrl),
	}
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100}}
	f.router = setupRouter(cfg, appHandlers{
		proposta:    handlers.NewPropostaHandler(f.proposta),
		contratacao: handlers.NewContratacaoHandler(f.contratacao),
		pagamento:   handlers.NewPagamentoHandler(f.pagamento),
		health:      health,
	})
	return f
}

func (f routerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPingAndHealth(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/ping", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/health", "").Code)

	failing := newFixture(t, func(context.Context) error { return errors.New("db down") })
	assert.Equal(t, http.StatusServiceUnavailable, failing.do(http.MethodGet, "/v1/health", "").Code)
}

func TestRoutesAreWired(t *testing.T) {
	f := newFixture(t, nil)

	f.proposta.EXPECT().Listar(gomock.Any()).Return([]dto.PropostaDTO{}, nil)
	f.proposta.EXPECT().Aprovar(gomock.Any(), int64(1)).Return(dto.PropostaDTO{ID: 1, Status: "Aprovada"}, nil)
	f.proposta.EXPECT().Rejeitar(gomock.Any(), int64(2)).Return(dto.PropostaDTO{ID: 2, Status: "Rejeitada"}, nil)
	f.contratacao.EXPECT().Contratar(gomock.Any(), dto.ContratarPropostaRequest{PropostaID: 1}).Return(int64(5), nil)
	f.contratacao.EXPECT().ObterPorID(gomock.Any(), int64(5)).Return(&dto.ContratacaoDTO{ID: 5, PropostaID: 1}, nil)
	f.pagamento.EXPECT().PagarPremio(gomock.Any(), int64(5), gomock.Any()).Return(dto.PagamentoDTO{ContratacaoID: 5}, nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/v1/propostas", "", http.StatusOK},
		{http.MethodPatch, "/v1/propostas/1/aprovar", "", http.StatusOK},
		{http.MethodPatch, "/v1/propostas/2/rejeitar", "", http.StatusOK},
		{http.MethodPost, "/v1/contratacoes", `{"propostaId":1}`, http.StatusCreated},
		{http.MethodGet, "/v1/contratacoes/5", "", http.StatusOK},
		{http.MethodPost, "/v1/contratacoes/5/pagamento", "", http.StatusOK},
	}
	for _, tc := range cases {
		w := f.do(tc.method, tc.path, tc.body)
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "%s %s", tc.method, tc.path)
	}
}

func TestBuildPaymentGateway_MissingTokenIsNil(t *testing.T) {
	assert.Nil(t, buildPaymentGateway(&config.Config{}))
	assert.NotNil(t, buildPaymentGateway(&config.Config{MercadoPago: config.MercadoPagoConfig{Mock: true}}))
}

func TestWaitForShutdown(t *testing.T) {
	t.Run("listen failure is returned", func(t *testing.T) {
		serveErr := make(chan error, 1)
		serveErr <- errors.New("address already in use")

		err := waitForShutdown(&http.Server{}, serveErr, make(chan os.Signal))
		assert.ErrorContains(t, err, "address already in use")
	})

	t.Run("signal shuts down cleanly", func(t *testing.T) {
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM

		assert.NoError(t, waitForShutdown(&http.Server{}, make(chan error), quit))
	})
}
