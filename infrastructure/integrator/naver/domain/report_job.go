package naverdomain

import "encoding/json"

// Status do job de relatório no servidor. O ciclo de vida nunca regride:
// CREATED -> PENDING -> BUILT são os estados observados na API; os estados
// terminais FAILED/TIMED_OUT/NONE existem apenas do lado do cliente quando
// a aquisição falha ou o orçamento de polling se esgota.
const (
	JobStatusPending = "PENDING"
	JobStatusBuilt   = "BUILT"
)

// ReportJob é a visão do cliente sobre o job assíncrono de relatório.
// DownloadURL só é preenchida quando o status é BUILT.
type ReportJob struct {
	ReportJobID json.Number `json:"reportJobId"`
	Status      string      `json:"status"`
	DownloadURL string      `json:"downloadUrl,omitempty"`
}

// CreateReportState discrimina o desfecho da criação do job.
type CreateReportState string

const (
	// CreateAccepted indica que o servidor aceitou o pedido e emitiu um jobId.
	CreateAccepted CreateReportState = "ACCEPTED"
	// CreateAggregationPending indica o código 20007: os dados do statDt
	// pedido ainda estão em agregação. Não é um erro; o chamador decide se
	// tenta novamente mais tarde.
	CreateAggregationPending CreateReportState = "AGGREGATION_PENDING"
	// CreateBusinessError indica um 400 estruturado com código diferente de
	// 20007, propagado com código e mensagem preservados.
	CreateBusinessError CreateReportState = "BUSINESS_ERROR"
)

// CreateReportResult é o resultado discriminado da criação do job.
type CreateReportResult struct {
	State   CreateReportState
	JobID   string
	Code    string
	Message string
}
