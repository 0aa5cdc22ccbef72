package handlers

import (
	"context"
	"net/http"

	request "indt_seguros/internal/adapter/http/dto/request"
	response "indt_seguros/internal/adapter/http/dto/response"
	"indt_seguros/internal/usecase"
	"indt_seguros/internal/usecase/dto"
	"indt_seguros/pkg"

	"github.com/gin-gonic/gin"
)

// PropostaHandler handles HTTP requests for insurance proposals.
type PropostaHandler struct {
	usecase usecase.IPropostaAppService
}

func NewPropostaHandler(uc usecase.IPropostaAppService) *PropostaHandler {
	return &PropostaHandler{usecase: uc}
}

// Criar godoc
// @Summary      Create a proposal
// @Description  Creates a proposal in EmAnalise status and returns its id.
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Param        proposta  body      request.CriarPropostaRequest  true  "Proposal"
// @Success      201       {object}  response.IDResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /propostas [post]
func (h *PropostaHandler) Criar(c *gin.Context) {
	var payload request.CriarPropostaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		abortWithError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest))
		return
	}

	id, err := h.usecase.Criar(c.Request.Context(), payload.ToDTO())
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}

// Listar godoc
// @Summary      List proposals
// @Tags         propostas
// @Produce      json
// @Success      200  {array}   response.PropostaResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /propostas [get]
func (h *PropostaHandler) Listar(c *gin.Context) {
	propostas, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPropostaDTOs(propostas))
}

// ObterPorID godoc
// @Summary      Get a proposal
// @Tags         propostas
// @Produce      json
// @Param        id   path      int  true  "Proposal id"
// @Success      200  {object}  response.PropostaResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /propostas/{id} [get]
func (h *PropostaHandler) ObterPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	proposta, err := h.usecase.ObterPorID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}
	if proposta == nil {
		abortWithError(c, errPropostaNaoEncontrada)
		return
	}

	c.JSON(http.StatusOK, response.FromPropostaDTO(*proposta))
}

// Aprovar godoc
// @Summary      Approve a proposal
// @Tags         propostas
// @Produce      json
// @Param        id   path      int  true  "Proposal id"
// @Success      200  {object}  response.PropostaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /propostas/{id}/aprovar [patch]
func (h *PropostaHandler) Aprovar(c *gin.Context) {
	h.patchStatus(c, h.usecase.Aprovar)
}

// Rejeitar godoc
// @Summary      Reject a proposal
// @Tags         propostas
// @Produce      json
// @Param        id   path      int  true  "Proposal id"
// @Success      200  {object}  response.PropostaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /propostas/{id}/rejeitar [patch]
func (h *PropostaHandler) Rejeitar(c *gin.Context) {
	h.patchStatus(c, h.usecase.Rejeitar)
}

func (h *PropostaHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, id int64) (dto.PropostaDTO, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	proposta, err := updater(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPropostaDTO(proposta))
}
