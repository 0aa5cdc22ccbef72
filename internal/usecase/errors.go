package usecase

import "errors"

// ErrOperacaoInvalida matches every OperacaoInvalidaError through errors.Is.
var ErrOperacaoInvalida = errors.New("operação inválida")

// OperacaoInvalidaError is an invalid-operation failure. Callers tell the
// failures apart by message or by comparing with the sentinels below.
type OperacaoInvalidaError struct {
	Mensagem string
}

func (e *OperacaoInvalidaError) Error() string {
	return e.Mensagem
}

func (e *OperacaoInvalidaError) Is(target error) bool {
	return target == ErrOperacaoInvalida
}

func novaOperacaoInvalida(msg string) error {
	return &OperacaoInvalidaError{Mensagem: msg}
}

var (
	ErrPropostaNaoEncontrada    = novaOperacaoInvalida("Proposta não encontrada.")
	ErrPropostaNaoAprovada      = novaOperacaoInvalida("Somente propostas aprovadas podem ser contratadas.")
	ErrTransicaoStatusInvalida  = novaOperacaoInvalida("Transição de status inválida.")
	ErrContratacaoNaoEncontrada = novaOperacaoInvalida("Contratação não encontrada.")
	ErrPayloadPagamentoInvalido = novaOperacaoInvalida("Payload de pagamento inválido.")
)

var ErrGatewayNaoConfigurado = errors.New("payment gateway not configured")
