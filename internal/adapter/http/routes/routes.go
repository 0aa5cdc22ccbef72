package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"indt_seguros/internal/adapter/http/handlers"
	"indt_seguros/internal/adapter/http/middleware"
	"indt_seguros/internal/adapter/persistence/repository"
	"indt_seguros/internal/config"
	"indt_seguros/internal/infrastructure/database"
	"indt_seguros/internal/infrastructure/logging"
	"indt_seguros/internal/infrastructure/payments"
	"indt_seguros/internal/usecase"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// appHandlers groups what the router needs from the composition root.
type appHandlers struct {
	proposta    *handlers.PropostaHandler
	contratacao *handlers.ContratacaoHandler
	pagamento   *handlers.PagamentoHandler
	health      func(ctx context.Context) error
}

// Run will start the server and block until a shutdown signal or a listen
// failure. Storage is released before it returns.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	app, cleanup, err := buildHandlers(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize %s storage: %w", cfg.StorageDriver, err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           setupRouter(cfg, app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return waitForShutdown(srv, serveErr, quit)
}

func waitForShutdown(srv *http.Server, serveErr <-chan error, quit <-chan os.Signal) error {
	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to startup the application: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func setupRouter(cfg *config.Config, app appHandlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)),
	)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1, app.health)
	addSegurosRoutes(v1, app)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (appHandlers, func(), error) {
	propostaRepo, contratacaoRepo, health, cleanup, err := buildRepositories(ctx, cfg)
	if err != nil {
		return appHandlers{}, nil, err
	}

	propostaService := usecase.NewPropostaAppService(propostaRepo)
	contratacaoService := usecase.NewContratacaoAppService(contratacaoRepo, propostaRepo)
	pagamentoService := usecase.NewPagamentoAppService(contratacaoRepo, propostaRepo, buildPaymentGateway(cfg))

	return appHandlers{
		proposta:    handlers.NewPropostaHandler(propostaService),
		contratacao: handlers.NewContratacaoHandler(contratacaoService),
		pagamento:   handlers.NewPagamentoHandler(pagamentoService),
		health:      health,
	}, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (
	interfaces.IPropostaRepository, interfaces.IContratacaoRepository, func(context.Context) error, func(), error,
) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := repository.EnsurePostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, nil, err
		}
		return repository.NewPropostaPostgresRepository(pool),
			repository.NewContratacaoPostgresRepository(pool),
			pool.Ping,
			pool.Close,
			nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		seq := repository.NewDynamoSequence(ddb, cfg.DynamoDB.SequencesTable)
		return repository.NewPropostaDynamoRepository(ddb, seq, cfg.DynamoDB.PropostasTable),
			repository.NewContratacaoDynamoRepository(ddb, seq, cfg.DynamoDB.ContratacoesTable),
			nil,
			func() {},
			nil
	}
}

func buildPaymentGateway(cfg *config.Config) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		return nil
	}
	return gw
}
