package handlers

import (
	"net/http"

	request "indt_seguros/internal/adapter/http/dto/request"
	response "indt_seguros/internal/adapter/http/dto/response"
	"indt_seguros/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContratacaoHandler handles HTTP requests for contracts.
type ContratacaoHandler struct {
	usecase usecase.IContratacaoAppService
}

func NewContratacaoHandler(uc usecase.IContratacaoAppService) *ContratacaoHandler {
	return &ContratacaoHandler{usecase: uc}
}

// Contratar godoc
// @Summary      Contract an approved proposal
// @Tags         contratacoes
// @Accept       json
// @Produce      json
// @Param        contratacao  body      request.ContratarPropostaRequest  true  "Proposal to contract"
// @Success      201          {object}  response.IDResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /contratacoes [post]
func (h *ContratacaoHandler) Contratar(c *gin.Context) {
	var payload request.ContratarPropostaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	id, err := h.usecase.Contratar(c.Request.Context(), payload.ToDTO())
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}

// Listar godoc
// @Summary      List contracts
// @Tags         contratacoes
// @Produce      json
// @Success      200  {array}   response.ContratacaoResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contratacoes [get]
func (h *ContratacaoHandler) Listar(c *gin.Context) {
	contratacoes, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromContratacaoDTOs(contratacoes))
}

// ObterPorID godoc
// @Summary      Get a contract
// @Tags         contratacoes
// @Produce      json
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  response.ContratacaoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contratacoes/{id} [get]
func (h *ContratacaoHandler) ObterPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	contratacao, err := h.usecase.ObterPorID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}
	if contratacao == nil {
		abortWithError(c, errContratacaoNaoEncontrada)
		return
	}

	c.JSON(http.StatusOK, response.FromContratacaoDTO(*contratacao))
}
