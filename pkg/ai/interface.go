package ai

import (
	"context"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
)

// Draft is a composed reply (shared type). The metadata block echoes what
// the engine knew when it generated the draft.
type Draft struct {
	Subject   string        `json:"subject"`
	Body      string        `json:"body"`
	Followups []string      `json:"followups"`
	Metadata  DraftMetadata `json:"metadata"`
}

// DraftMetadata describes how a draft was generated.
type DraftMetadata struct {
	Summary     string   `json:"summary"`
	GeneratedAt string   `json:"generated_at"`
	Tone        string   `json:"tone"`
	Categories  []string `json:"categories"`
	Actions     []string `json:"actions"`
	PromptUsed  string   `json:"prompt_used,omitempty"`
}

// DraftOptions controls reply generation. Use DefaultDraftOptions as the
// starting point; the zero value disables followups.
type DraftOptions struct {
	Tone             string
	IncludeFollowups bool
	// Categories and Actions, when set, are carried into the draft instead
	// of being recomputed. Engines recompute both when nil or empty.
	Categories []string
	Actions    []string
}

// DefaultDraftOptions returns the baseline options: neutral tone with
// followups enabled.
func DefaultDraftOptions() DraftOptions {
	return DraftOptions{Tone: "neutral", IncludeFollowups: true}
}

// Engine is the interface for email inference: categorization, action-item
// extraction, summarization and reply drafting.
// Implement this interface to add new providers. The prompt argument is the
// engine's only prompt-consumption point: the heuristic baseline carries it
// into draft metadata without interpreting it, while a real LLM provider is
// free to use it as an instruction.
type Engine interface {
	Categorize(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error)
	ExtractActions(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error)
	Summarize(ctx context.Context, email inboxdomain.Email, prompt string) (string, error)
	DraftReply(ctx context.Context, email inboxdomain.Email, prompt string, opts DraftOptions) (*Draft, error)
}

// ProviderType represents the inference provider type
type ProviderType string

const (
	ProviderHeuristic ProviderType = "heuristic"
	ProviderOllama    ProviderType = "ollama"
	ProviderAuto      ProviderType = "auto"
)
