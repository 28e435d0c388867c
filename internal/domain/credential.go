package domain

import "fmt"

// Credential representa o trio de chaves de uma conta da plataforma de
// busca. É imutável durante a execução de um pipeline e nunca deve ser
// logada ou persistida pelo núcleo.
type Credential struct {
	Alias      string `json:"alias"`
	AccessKey  string `json:"access_key"`
	SecretKey  string `json:"secret_key"`
	CustomerID string `json:"customer_id"`
}

// String mascara as chaves para evitar vazamento em logs.
func (c Credential) String() string {
	return fmt.Sprintf("Credential{alias=%s, access_key=%s, customer_id=%s}", c.Alias, mask(c.AccessKey), c.CustomerID)
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// CredentialSummary é a visão pública de uma credencial (sem segredos),
// usada nas respostas da API.
type CredentialSummary struct {
	Alias      string `json:"alias"`
	AccessKey  string `json:"access_key"`
	CustomerID string `json:"customer_id"`
}

// Summary converte a credencial na visão pública, mascarando a access key.
func (c Credential) Summary() CredentialSummary {
	return CredentialSummary{
		Alias:      c.Alias,
		AccessKey:  mask(c.AccessKey),
		CustomerID: c.CustomerID,
	}
}
