package naverclient

import (
	"fmt"
	"io"
	"net/http"

	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// DownloadReport baixa o TSV cru do relatório pronto. A URL devolvida pelo
// servidor é completa, mas a assinatura cobre somente path + query: assinar
// a URL inteira faz o servidor recusar a requisição.
func (c *NaverClient) DownloadReport(cred domain.Credential, downloadURL string) (string, error) {
	uri, err := SignaturePath(downloadURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, value := range c.Signer.Sign(http.MethodGet, uri, cred) {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	// Não existe caminho de recuperação parcial: qualquer status fora de
	// 2xx é fatal para a invocação corrente
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &naverdomain.TransportError{Step: "download", StatusCode: resp.StatusCode, Body: string(body)}
	}

	return string(body), nil
}
