package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/searchads-manager-api/pkg/log"
)

// AddCredential registra uma credencial no cofre em memória. As chaves
// nunca voltam na resposta nem aparecem nos logs.
func AddCredential(vault credentialing.Vault) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var cred domain.Credential
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := vault.Add(cred); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		logger.WithField("alias", cred.Alias).Info("credentials: credencial registrada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(cred.Summary())
	})
}

func RemoveCredential(vault credentialing.Vault) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alias := httprouter.ParamsFromContext(r.Context()).ByName("alias")

		if err := vault.Remove(alias); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithField("alias", alias).Info("credentials: credencial removida")
		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCredentials(vault credentialing.Vault) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vault.List())
	})
}
