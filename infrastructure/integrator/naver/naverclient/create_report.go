package naverclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

const statReportsURI = "/stat-reports"

type createReportRequest struct {
	ReportType string `json:"reportTp"`
	StatDt     string `json:"statDt"`
}

// CreateReport solicita a geração assíncrona de um relatório para o statDt
// informado. Os três desfechos de negócio (aceito, agregação em andamento,
// erro de negócio) voltam como resultado discriminado; falhas de transporte
// voltam como erro com a resposta crua preservada.
func (c *NaverClient) CreateReport(cred domain.Credential, reportType, statDt string) (*naverdomain.CreateReportResult, error) {
	payload, err := json.Marshal(createReportRequest{
		ReportType: reportType,
		StatDt:     statDt,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o corpo da requisição: %w", err)
	}

	url := c.Cfg.Naver.BaseURL + statReportsURI

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, value := range c.Signer.Sign(http.MethodPost, statReportsURI, cred) {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var job naverdomain.ReportJob
		if err := json.Unmarshal(body, &job); err != nil {
			return nil, &naverdomain.TransportError{Step: "create", StatusCode: resp.StatusCode, Body: string(body)}
		}

		return &naverdomain.CreateReportResult{
			State: naverdomain.CreateAccepted,
			JobID: job.ReportJobID.String(),
		}, nil

	case resp.StatusCode == http.StatusBadRequest:
		var errBody naverdomain.ErrorResponse
		if err := json.Unmarshal(body, &errBody); err != nil {
			// 400 sem corpo JSON decodificável é tratado como falha de
			// transporte, com a resposta crua preservada
			return nil, &naverdomain.TransportError{Step: "create", StatusCode: resp.StatusCode, Body: string(body)}
		}

		if errBody.IsAggregationPending() {
			logrus.WithFields(logrus.Fields{
				"stat_dt": statDt,
				"code":    errBody.CodeString(),
			}).Info("naver: dados ainda em agregação, relatório não pode ser gerado agora")

			return &naverdomain.CreateReportResult{
				State:   naverdomain.CreateAggregationPending,
				Code:    errBody.CodeString(),
				Message: errBody.Message,
			}, nil
		}

		return &naverdomain.CreateReportResult{
			State:   naverdomain.CreateBusinessError,
			Code:    errBody.CodeString(),
			Message: errBody.Message,
		}, nil

	default:
		return nil, &naverdomain.TransportError{Step: "create", StatusCode: resp.StatusCode, Body: string(body)}
	}
}
