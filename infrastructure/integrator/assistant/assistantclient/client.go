package assistantclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/vfg2006/searchads-manager-api/internal/config"
)

type Client interface {
	Invoke(ctx context.Context, system, prompt string) (string, error)
	InvokeStream(ctx context.Context, system, prompt string, emit func(chunk string) error) error
}

// BedrockClient conversa com o modelo via AWS Bedrock Runtime. O assistente
// é sem estado: cada chamada leva a instrução de sistema e o prompt, e
// devolve o texto gerado ou falha com um erro de comunicação.
type BedrockClient struct {
	runtime   *bedrockruntime.Client
	modelID   string
	maxTokens int
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type streamDelta struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Assistant.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a configuração da AWS: %w", err)
	}

	return &BedrockClient{
		runtime:   bedrockruntime.NewFromConfig(awsCfg),
		modelID:   cfg.Assistant.ModelID,
		maxTokens: cfg.Assistant.MaxTokens,
	}, nil
}

func (c *BedrockClient) buildBody(system, prompt string) ([]byte, error) {
	return json.Marshal(invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        c.maxTokens,
		System:           system,
		Messages: []message{
			{
				Role:    "user",
				Content: []contentBlock{{Type: "text", Text: prompt}},
			},
		},
	})
}

// Invoke faz uma geração completa de texto.
func (c *BedrockClient) Invoke(ctx context.Context, system, prompt string) (string, error) {
	body, err := c.buildBody(system, prompt)
	if err != nil {
		return "", fmt.Errorf("erro ao montar o corpo da requisição: %w", err)
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao invocar o modelo: %w", err)
	}

	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta do modelo: %w", err)
	}

	text := ""
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return text, nil
}

// InvokeStream faz a geração em streaming, entregando cada fragmento de
// texto ao emit na ordem em que chega.
func (c *BedrockClient) InvokeStream(ctx context.Context, system, prompt string, emit func(chunk string) error) error {
	body, err := c.buildBody(system, prompt)
	if err != nil {
		return fmt.Errorf("erro ao montar o corpo da requisição: %w", err)
	}

	output, err := c.runtime.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("erro ao invocar o modelo em streaming: %w", err)
	}

	stream := output.GetStream()
	defer stream.Close()

	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}

		var delta streamDelta
		if err := json.Unmarshal(chunk.Value.Bytes, &delta); err != nil {
			continue
		}

		if delta.Type == "content_block_delta" && delta.Delta.Text != "" {
			if err := emit(delta.Delta.Text); err != nil {
				return err
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("erro durante o streaming da resposta: %w", err)
	}

	return nil
}
