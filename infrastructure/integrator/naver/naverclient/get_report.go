package naverclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// GetReportJob consulta o status de um job de relatório. Uma leitura de
// status nunca muda o job depois de um estado terminal; o cliente apenas
// observa até BUILT ou até esgotar o orçamento de polling.
func (c *NaverClient) GetReportJob(cred domain.Credential, jobID string) (*naverdomain.ReportJob, error) {
	uri := fmt.Sprintf("%s/%s", statReportsURI, jobID)
	url := c.Cfg.Naver.BaseURL + uri

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, value := range c.Signer.Sign(http.MethodGet, uri, cred) {
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

	if resp.StatusCode != http.StatusOK {
		return nil, &naverdomain.TransportError{Step: "poll", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var job naverdomain.ReportJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, &naverdomain.TransportError{Step: "poll", StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &job, nil
}
