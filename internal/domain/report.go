package domain

// AdMetricsRow é uma linha do relatório com campos nomeados. Os valores
// permanecem como texto: a normalização é uma transformação estrutural e
// não valida faixas numéricas.
type AdMetricsRow map[string]string

// ReportTable é o resultado da normalização de um relatório: as colunas na
// ordem original do arquivo e as linhas na ordem em que foram lidas.
type ReportTable struct {
	Columns []string       `json:"columns"`
	Rows    []AdMetricsRow `json:"rows"`
}

// FetchState discrimina o desfecho de uma aquisição de relatório. O caso
// AggregationPending não é um erro: a plataforma ainda está agregando os
// dados do statDt pedido e o chamador decide se tenta mais tarde.
type FetchState string

const (
	FetchSuccess            FetchState = "SUCCESS"
	FetchAggregationPending FetchState = "AGGREGATION_PENDING"
	FetchBusinessError      FetchState = "BUSINESS_ERROR"
	FetchTransportError     FetchState = "TRANSPORT_ERROR"
	FetchTimeout            FetchState = "TIMEOUT"
)

// FetchReportResult é o resultado discriminado do pipeline de aquisição.
// Nos desfechos sem sucesso, Step, RawStatus e RawBody preservam o que é
// necessário para diagnosticar sem reexecutar.
type FetchReportResult struct {
	State        FetchState   `json:"state"`
	Alias        string       `json:"alias"`
	StatDate     string       `json:"stat_date"`
	ReportType   string       `json:"report_type"`
	JobID        string       `json:"job_id,omitempty"`
	Table        *ReportTable `json:"table,omitempty"`
	BusinessCode string       `json:"business_code,omitempty"`
	Step         string       `json:"step,omitempty"`
	RawStatus    int          `json:"raw_status,omitempty"`
	RawBody      string       `json:"raw_body,omitempty"`
	Message      string       `json:"message,omitempty"`

	// Raw é o TSV cru baixado; preenchido apenas no sucesso e consumido
	// pela normalização, nunca serializado nas respostas.
	Raw string `json:"-"`
}
