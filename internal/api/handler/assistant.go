package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/searchads-manager-api/pkg/log"
)

type GenerateRequest struct {
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream,omitempty"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

// Generate invoca o assistente conversacional como função de texto sem
// estado. Com stream=true a resposta sai em fragmentos conforme o modelo
// gera.
func Generate(service *assistant.AssistantIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Prompt == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "prompt é obrigatório", nil)
			return
		}

		if req.Stream {
			flusher, ok := w.(http.Flusher)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "streaming não suportado pela conexão", nil)
				return
			}

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")

			err := service.GenerateStream(r.Context(), req.System, req.Prompt, func(chunk string) error {
				if _, err := w.Write([]byte(chunk)); err != nil {
					return err
				}
				flusher.Flush()
				return nil
			})
			if err != nil {
				// A resposta já pode ter começado; só registra
				logger.WithError(err).Error("assistant: streaming interrompido")
			}
			return
		}

		text, err := service.Generate(r.Context(), req.System, req.Prompt)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Falha na comunicação com o assistente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GenerateResponse{Text: text})
	})
}
