package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config centralizes the environment-driven settings of the API.
type Config struct {
	Port          int
	GinMode       string
	StorageDriver string
	Log           LogConfig
	RateLimit     RateLimitConfig
	DynamoDB      DynamoDBConfig
	Postgres      PostgresConfig
	MercadoPago   MercadoPagoConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DynamoDBConfig mirrors the env vars read by database.NewDynamoDBConfig.
type DynamoDBConfig struct {
	Region            string
	AccessKeyID       string
	SecretAccessKey   string
	Endpoint          string
	PropostasTable    string
	ContratacoesTable string
	SequencesTable    string
}

type PostgresConfig struct {
	DSN string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

// Load reads the environment applying defaults. The .env file is loaded by
// cmd/api through godotenv/autoload before Load runs.
func Load() (*Config, error) {
	cfg := &Config{
		GinMode:       getenvDefault("GIN_MODE", "release"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		Log: LogConfig{
			Level:  strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getenvDefault("LOG_FORMAT", "json")),
		},
		DynamoDB: DynamoDBConfig{
			Region:            getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:          os.Getenv("DYNAMODB_ENDPOINT"),
			PropostasTable:    getenvDefault("PROPOSTAS_TABLE", "propostas"),
			ContratacoesTable: getenvDefault("CONTRATACOES_TABLE", "contratacoes"),
			SequencesTable:    getenvDefault("SEQUENCES_TABLE", "sequences"),
		},
		Postgres: PostgresConfig{
			DSN: strings.TrimSpace(os.Getenv("DB_DSN")),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:        isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		},
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	switch cfg.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if cfg.Postgres.DSN == "" {
			return nil, errors.New("DB_DSN obrigatório para STORAGE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER inválido: %q", cfg.StorageDriver)
	}

	rps, err := strconv.ParseFloat(getenvDefault("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		return nil, errors.New("RATE_LIMIT_RPS inválido")
	}
	burst, err := strconv.Atoi(getenvDefault("RATE_LIMIT_BURST", "20"))
	if err != nil || burst <= 0 {
		return nil, errors.New("RATE_LIMIT_BURST inválido")
	}
	cfg.RateLimit = RateLimitConfig{RequestsPerSecond: rps, Burst: burst}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
