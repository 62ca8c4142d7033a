package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardiansf/career-copilot/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService is the alternative GenerativeTextService backend, selected
// with AI_PROVIDER=gemini.
type GeminiService struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, log *zap.Logger) (*GeminiService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiService{client: client, model: cfg.Model, log: log}, nil
}

func (s *GeminiService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.2)),
		MaxOutputTokens:   1200,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(userPrompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("generation failed: empty gemini response")
	}
	return text, nil
}

func (s *GeminiService) Model() string {
	return s.model
}
