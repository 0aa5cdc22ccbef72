package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"indt_seguros/internal/usecase"
	"indt_seguros/internal/usecase/interfaces"
	"indt_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errPropostaNaoEncontrada    = pkg.NewDomainErrorSimple("PROPOSTA_NAO_ENCONTRADA", usecase.ErrPropostaNaoEncontrada.Error(), http.StatusNotFound)
	errContratacaoNaoEncontrada = pkg.NewDomainErrorSimple("CONTRATACAO_NAO_ENCONTRADA", usecase.ErrContratacaoNaoEncontrada.Error(), http.StatusNotFound)
)

// mapAppServiceError translates app service failures into HTTP errors.
// Repository errors fall through to INTERNAL_ERROR.
func mapAppServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPropostaNaoEncontrada):
		return errPropostaNaoEncontrada
	case errors.Is(err, usecase.ErrContratacaoNaoEncontrada):
		return errContratacaoNaoEncontrada
	case errors.Is(err, usecase.ErrPropostaNaoAprovada):
		return pkg.NewDomainErrorSimple("PROPOSTA_NAO_APROVADA", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrTransicaoStatusInvalida), errors.Is(err, interfaces.ErrStatusDivergente):
		return pkg.NewDomainErrorSimple("TRANSICAO_STATUS_INVALIDA", usecase.ErrTransicaoStatusInvalida.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNaoConfigurado):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOperacaoInvalida):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID reads a positive integer path parameter. On failure the request is
// already answered with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, errInvalidRequest)
		return 0, false
	}
	return id, true
}
