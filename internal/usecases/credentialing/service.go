package credentialing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// Vault é o cofre de credenciais da plataforma de busca: registros
// nomeados por alias, mantidos apenas em memória durante a vida do
// processo. Não há persistência de credenciais.
type Vault interface {
	Add(cred domain.Credential) error
	Remove(alias string) error
	List() []domain.CredentialSummary
	Aliases() []string
	Resolve(alias string) (domain.Credential, error)
}

type vault struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

func NewVault() Vault {
	return &vault{
		creds: make(map[string]domain.Credential),
	}
}

func (v *vault) Add(cred domain.Credential) error {
	if cred.Alias == "" || cred.AccessKey == "" || cred.SecretKey == "" || cred.CustomerID == "" {
		return fmt.Errorf("credencial incompleta: alias, access_key, secret_key e customer_id são obrigatórios")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.creds[cred.Alias] = cred

	// Loga apenas a visão mascarada, nunca a secret key
	logrus.WithField("alias", cred.Alias).Infof("credenciais registradas: %s", cred)
	return nil
}

func (v *vault) Remove(alias string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.creds[alias]; !ok {
		return fmt.Errorf("credencial não encontrada: %s", alias)
	}

	delete(v.creds, alias)
	logrus.WithField("alias", alias).Info("credenciais removidas")
	return nil
}

func (v *vault) List() []domain.CredentialSummary {
	v.mu.RLock()
	defer v.mu.RUnlock()

	summaries := make([]domain.CredentialSummary, 0, len(v.creds))
	for _, cred := range v.creds {
		summaries = append(summaries, cred.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Alias < summaries[j].Alias
	})

	return summaries
}

func (v *vault) Aliases() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	aliases := make([]string, 0, len(v.creds))
	for alias := range v.creds {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)
	return aliases
}

func (v *vault) Resolve(alias string) (domain.Credential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	cred, ok := v.creds[alias]
	if !ok {
		return domain.Credential{}, fmt.Errorf("credencial não encontrada: %s", alias)
	}

	return cred, nil
}
