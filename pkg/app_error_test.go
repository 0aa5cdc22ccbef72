package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: db down", err.Error())
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, err.ToHTTPError())
}

func TestNewDomainErrorSimple(t *testing.T) {
	err := NewDomainErrorSimple("PROPOSTA_NAO_ENCONTRADA", "Proposta não encontrada.", http.StatusNotFound)

	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "PROPOSTA_NAO_ENCONTRADA: Proposta não encontrada.", err.Error())
	assert.Equal(t, "Proposta não encontrada.", err.ToHTTPError().Message)
}
