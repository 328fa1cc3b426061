package ai

// Config holds inference provider configuration
type Config struct {
	Provider ProviderType // "heuristic", "ollama" or "auto"

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewEngine creates an Engine based on the config.
// This is the factory function - switch inference provider by changing
// config.Provider. The heuristic engine is the documented baseline and the
// default for unknown providers, so construction never fails.
func NewEngine(cfg Config) Engine {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaEngine(cfg.OllamaBaseURL, cfg.OllamaModel)

	case ProviderAuto:
		return NewFallbackEngine(NewOllamaEngine(cfg.OllamaBaseURL, cfg.OllamaModel), NewHeuristicEngine())

	default:
		return NewHeuristicEngine()
	}
}
