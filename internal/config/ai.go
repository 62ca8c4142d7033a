package config

import "sync"

type AIConfig struct {
	Provider string // "azure" or "gemini"
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		aiConfig = &AIConfig{
			Provider: envOrDefault("AI_PROVIDER", "azure"),
		}
	})
	return aiConfig
}
