package naverclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// Signer gera o conjunto de cabeçalhos de autenticação por requisição.
// A assinatura é de uso único e sensível ao tempo: vale apenas para o trio
// exato (método, uri, timestamp) sobre o qual foi calculada, então um novo
// conjunto de cabeçalhos é gerado a cada chamada HTTP.
type Signer struct {
	now func() time.Time
}

func NewSigner() *Signer {
	return &Signer{now: time.Now}
}

// WithClock fixa o relógio do assinador. Usado em testes.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

// Sign calcula os cabeçalhos assinados para (method, uri, credential).
// O uri deve ser apenas path + query string, sem esquema e sem host — a
// API rejeita assinaturas calculadas sobre a URL completa.
func (s *Signer) Sign(method, uri string, cred domain.Credential) map[string]string {
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)

	message := timestamp + "." + method + "." + uri
	mac := hmac.New(sha256.New, []byte(cred.SecretKey))
	mac.Write([]byte(message))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return map[string]string{
		"Content-Type": "application/json; charset=UTF-8",
		"X-Timestamp":  timestamp,
		"X-API-KEY":    cred.AccessKey,
		"X-Customer":   cred.CustomerID,
		"X-Signature":  signature,
	}
}

// SignaturePath extrai de uma URL completa o componente que deve ser
// assinado: path + query, sem esquema e sem host. A URL de download
// devolvida pelo servidor é completa, e assiná-la inteira faz o servidor
// rejeitar a requisição.
func SignaturePath(rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, "/") {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("URL de download inválida: %w", err)
	}

	uri := parsed.Path
	if parsed.RawQuery != "" {
		uri += "?" + parsed.RawQuery
	}

	return uri, nil
}
