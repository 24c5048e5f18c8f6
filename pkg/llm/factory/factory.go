package factory

import (
	"fmt"

	"chem-synthesis-be/pkg/llm"
	"chem-synthesis-be/pkg/llm/perplexity"
)

func NewLLMProvider(providerType, apiKey, baseURL, modelName string) (llm.Provider, error) {
	switch providerType {
	case "perplexity":
		return perplexity.NewPerplexityProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
