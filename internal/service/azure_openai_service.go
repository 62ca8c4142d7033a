package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ardiansf/career-copilot/internal/config"
	"github.com/ardiansf/career-copilot/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// AzureOpenAIService talks to an Azure-style chat-completions deployment.
// One request per call, no retries; failures surface as a single
// "generation failed" error and the caller falls back.
type AzureOpenAIService struct {
	client *resty.Client
	cfg    *config.AzureOpenAIConfig
	log    *zap.Logger
}

func NewAzureOpenAIService(cfg *config.AzureOpenAIConfig, log *zap.Logger) *AzureOpenAIService {
	client := resty.New().
		SetTimeout(90 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &AzureOpenAIService{client: client, cfg: cfg, log: log}
}

func (s *AzureOpenAIService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		s.cfg.BaseURL, s.cfg.Deployment, s.cfg.APIVersion)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("api-key", s.cfg.APIKey).
		SetBody(map[string]any{
			"model":       s.cfg.Deployment,
			"temperature": s.cfg.Temperature,
			"max_tokens":  s.cfg.MaxTokens,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userPrompt},
			},
		}).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if resp.IsError() {
		s.log.Warn("azure openai non-2xx",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", logger.TruncateForLog(resp.String(), 200)))
		return "", fmt.Errorf("generation failed: azure openai status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("generation failed: empty completion envelope")
	}
	return text, nil
}

func (s *AzureOpenAIService) Model() string {
	return s.cfg.Deployment
}
