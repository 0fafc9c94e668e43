package explain

import (
	"fmt"
	"net/http"
)

// ProviderFromName selects the active text-generation provider by
// configured name. "none" (or empty) disables the provider entirely;
// the Explainer then serves templated text only.
func ProviderFromName(name, apiKey, model string, client *http.Client) (Provider, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an api key")
		}
		return NewGeminiProvider(apiKey, model, client), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewOpenAIProvider(apiKey, model, client), nil
	}
	return nil, fmt.Errorf("unknown ai provider %q", name)
}
