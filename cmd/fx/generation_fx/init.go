package generation_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"papermint/internal/api/controllers"
	"papermint/internal/services"
	mem "papermint/pkg/memcache"
	"papermint/pkg/utils"
)

var Module = fx.Provide(
	ProvideContentGenerator,
	ProvideGenerationService,
	ProvideGenerationController)

// GenerationConfig holds configuration for AI content clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideContentGenerator creates a generator client based on environment variables
func ProvideContentGenerator() (utils.ContentGeneratorInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s content generator with model: %s", config.Provider, config.Model)

	generator, err := utils.NewContentGenerator(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create content generator: %w", err)
	}
	return generator, nil
}

func ProvideGenerationService(
	generator utils.ContentGeneratorInterface,
	drafts mem.DraftStore,
) services.GenerationServiceInterface {
	return services.NewGenerationService(generator, drafts)
}

func ProvideGenerationController(
	generationService services.GenerationServiceInterface,
) *controllers.GenerationController {
	return controllers.NewGenerationController(generationService)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
