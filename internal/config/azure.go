package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

type AzureOpenAIConfig struct {
	BaseURL     string
	APIKey      string
	APIVersion  string
	Deployment  string
	Temperature float64
	MaxTokens   int
}

var (
	azureConfig *AzureOpenAIConfig
	azureOnce   sync.Once
)

func LoadAzureOpenAIConfig() *AzureOpenAIConfig {
	azureOnce.Do(func() {
		azureConfig = &AzureOpenAIConfig{
			BaseURL:     strings.TrimRight(os.Getenv("AZURE_OPENAI_BASE"), "/"),
			APIKey:      os.Getenv("AZURE_OPENAI_API_KEY"),
			APIVersion:  envOrDefault("AZURE_OPENAI_API_VERSION", "2025-01-01-preview"),
			Deployment:  envOrDefault("AZURE_OPENAI_DEPLOYMENT", "gpt-4.1-nano"),
			Temperature: envFloat("AZURE_OPENAI_TEMPERATURE", 0.2),
			MaxTokens:   envInt("AZURE_OPENAI_MAX_TOKENS", 1200),
		}
	})
	return azureConfig
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
