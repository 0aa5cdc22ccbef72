package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "indt_seguros/internal/adapter/http/dto/response"
	"indt_seguros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PagamentoHandler charges the premium of a contract.
type PagamentoHandler struct {
	usecase usecase.IPagamentoAppService
}

func NewPagamentoHandler(uc usecase.IPagamentoAppService) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// PagarPremio godoc
// @Summary      Charge the premium of a contract
// @Description  Body is either a raw Mercado Pago payment payload or {"mp_payload": {...}}. transaction_amount is always the proposal premium.
// @Tags         contratacoes
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true   "Contract id"
// @Param        payload  body      request.PagamentoPremioRequest  false  "Mercado Pago payload"
// @Success      200      {object}  response.PagamentoResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /contratacoes/{id}/pagamento [post]
func (h *PagamentoHandler) PagarPremio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	logger := zerolog.Ctx(c.Request.Context())

	mpPayload, err := readMPPayload(c)
	if err != nil {
		logger.Warn().Err(err).Int64("contratacao_id", id).Msg("invalid payment payload")
		abortWithError(c, errInvalidRequest)
		return
	}

	pagamento, err := h.usecase.PagarPremio(c.Request.Context(), id, mpPayload)
	if err != nil {
		abortWithError(c, mapAppServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPagamentoDTO(pagamento))
}

// readMPPayload accepts an empty body, a raw provider payload or an
// envelope with an mp_payload field.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
