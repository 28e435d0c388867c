package naverdomain

import (
	"fmt"
	"strings"
)

// AggregationPendingCode é o código de negócio que significa "dados ainda
// em agregação, relatório não pode ser gerado agora".
const AggregationPendingCode = "20007"

// ErrorResponse representa o corpo JSON de erro da API de relatórios.
// O campo code chega ora como número, ora como string.
type ErrorResponse struct {
	Code    any    `json:"code"`
	Message string `json:"message"`
}

// CodeString normaliza o código de erro para texto.
func (e *ErrorResponse) CodeString() string {
	s := fmt.Sprint(e.Code)
	// json decodifica números em float64; remove um eventual sufixo decimal
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return s
}

// IsAggregationPending verifica se o erro é o sinal neutro de agregação
// em andamento (código 20007).
func (e *ErrorResponse) IsAggregationPending() bool {
	return e.CodeString() == AggregationPendingCode
}

// TransportError preserva a resposta crua de uma falha de transporte
// (status fora de 2xx/400 ou corpo de erro não decodificável), para que o
// problema possa ser diagnosticado sem reexecutar o pipeline.
type TransportError struct {
	Step       string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("erro de transporte na etapa %s: status %d: %s", e.Step, e.StatusCode, e.Body)
}

// TimeoutError indica que o orçamento de polling se esgotou sem o job
// atingir BUILT. Nunca é convertido em resultado parcial.
type TimeoutError struct {
	JobID    string
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("job %s não ficou pronto após %d tentativas de polling", e.JobID, e.Attempts)
}
