package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Backing documents for the JSON stores
	DataDir     string
	InboxPath   string
	PromptsPath string
	StatePath   string
	DraftsPath  string

	// Inference engine selection
	AIProvider    string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "assets")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       dataDir,
		InboxPath:     getEnv("INBOX_PATH", filepath.Join(dataDir, "mock_inbox.json")),
		PromptsPath:   getEnv("PROMPTS_PATH", filepath.Join(dataDir, "default_prompts.json")),
		StatePath:     getEnv("STATE_PATH", filepath.Join(dataDir, "processed.json")),
		DraftsPath:    getEnv("DRAFTS_PATH", filepath.Join(dataDir, "drafts.json")),
		AIProvider:    getEnv("AI_PROVIDER", "heuristic"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", ""),
		OllamaModel:   getEnv("OLLAMA_MODEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
