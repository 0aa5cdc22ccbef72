package main

import (
	_ "indt_seguros/docs"
	"indt_seguros/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           INDT Seguros API
// @version         1.0
// @description     Insurance proposals and contracts backed by DynamoDB or PostgreSQL.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
