package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathPropostas    = "/propostas"
	PathContratacoes = "/contratacoes"
)

func addSegurosRoutes(rg *gin.RouterGroup, app appHandlers) {
	propostas := rg.Group(PathPropostas)
	{
		propostas.POST("", app.proposta.Criar)
		propostas.GET("", app.proposta.Listar)
		propostas.GET("/:id", app.proposta.ObterPorID)
		propostas.PATCH("/:id/aprovar", app.proposta.Aprovar)
		propostas.PATCH("/:id/rejeitar", app.proposta.Rejeitar)
	}

	contratacoes := rg.Group(PathContratacoes)
	{
		contratacoes.POST("", app.contratacao.Contratar)
		contratacoes.GET("", app.contratacao.Listar)
		contratacoes.GET("/:id", app.contratacao.ObterPorID)
		contratacoes.POST("/:id/pagamento", app.pagamento.PagarPremio)
	}
}
