package naverclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func expectedSignature(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSigner_Sign(t *testing.T) {
	cred := domain.Credential{
		Alias:      "loja-01",
		AccessKey:  "access-key",
		SecretKey:  "secret-key",
		CustomerID: "12345",
	}

	t1 := time.UnixMilli(1700000000000)

	t.Run("Assinatura determinística para o mesmo instante", func(t *testing.T) {
		signer := NewSigner().WithClock(fixedClock(t1))

		first := signer.Sign("POST", "/stat-reports", cred)
		second := signer.Sign("POST", "/stat-reports", cred)

		assert.Equal(t, first["X-Signature"], second["X-Signature"])
		assert.Equal(t, "1700000000000", first["X-Timestamp"])
		assert.Equal(t, "access-key", first["X-API-KEY"])
		assert.Equal(t, "12345", first["X-Customer"])
		assert.Equal(t, "application/json; charset=UTF-8", first["Content-Type"])

		// A mensagem assinada é timestamp.método.uri
		assert.Equal(t,
			expectedSignature("secret-key", "1700000000000.POST./stat-reports"),
			first["X-Signature"],
		)
	})

	t.Run("Instantes diferentes produzem assinaturas diferentes", func(t *testing.T) {
		t2 := t1.Add(1 * time.Millisecond)

		first := NewSigner().WithClock(fixedClock(t1)).Sign("GET", "/stat-reports/42", cred)
		second := NewSigner().WithClock(fixedClock(t2)).Sign("GET", "/stat-reports/42", cred)

		assert.NotEqual(t, first["X-Signature"], second["X-Signature"])
	})

	t.Run("URIs diferentes produzem assinaturas diferentes", func(t *testing.T) {
		signer := NewSigner().WithClock(fixedClock(t1))

		first := signer.Sign("GET", "/stat-reports/42", cred)
		second := signer.Sign("GET", "/stat-reports/43", cred)

		assert.NotEqual(t, first["X-Signature"], second["X-Signature"])
	})
}

func TestSignaturePath(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "URL completa perde esquema e host",
			rawURL:   "https://host/path/to/file?x=1",
			expected: "/path/to/file?x=1",
		},
		{
			name:     "URL sem query string",
			rawURL:   "https://api.searchad.naver.com/report-download/42",
			expected: "/report-download/42",
		},
		{
			name:     "Caminho relativo passa inalterado",
			rawURL:   "/stat-reports/42",
			expected: "/stat-reports/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := SignaturePath(tt.rawURL)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, uri)
		})
	}
}
