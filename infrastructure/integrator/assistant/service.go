package assistant

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/assistant/assistantclient"
	"github.com/vfg2006/searchads-manager-api/internal/config"
)

// AssistantIntegrator expõe o assistente conversacional como uma função de
// texto sem estado: instrução de sistema + prompt -> texto gerado. Falhas
// aparecem como uma única condição de erro de comunicação.
type AssistantIntegrator struct {
	cfg    *config.Config
	Client assistantclient.Client
}

func New(cfg *config.Config, client assistantclient.Client) *AssistantIntegrator {
	return &AssistantIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AssistantIntegrator) Generate(ctx context.Context, system, prompt string) (string, error) {
	text, err := s.Client.Invoke(ctx, system, prompt)
	if err != nil {
		logrus.WithError(err).Error("assistant: falha na geração de texto")
		return "", err
	}

	return text, nil
}

func (s *AssistantIntegrator) GenerateStream(ctx context.Context, system, prompt string, emit func(chunk string) error) error {
	if err := s.Client.InvokeStream(ctx, system, prompt, emit); err != nil {
		logrus.WithError(err).Error("assistant: falha na geração em streaming")
		return err
	}

	return nil
}
