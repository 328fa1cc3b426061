package ai

import (
	"context"
	"log"
	"net"
	"strings"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
)

// FallbackEngine tries the Ollama provider first and falls back to the
// deterministic heuristic engine when the model is unreachable or errors
// out. The heuristic engine never fails, so every operation succeeds.
type FallbackEngine struct {
	ollama    *OllamaEngine
	heuristic *HeuristicEngine
}

// NewFallbackEngine creates a new fallback engine over both providers.
func NewFallbackEngine(ollama *OllamaEngine, heuristic *HeuristicEngine) *FallbackEngine {
	return &FallbackEngine{
		ollama:    ollama,
		heuristic: heuristic,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}
	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// Categorize tries Ollama first, falls back to heuristics on any error.
func (f *FallbackEngine) Categorize(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error) {
	if f.ollama != nil {
		tags, err := f.ollama.Categorize(ctx, email, prompt)
		if err == nil {
			return tags, nil
		}
		f.logFallback("categorize", err)
	}
	return f.heuristic.Categorize(ctx, email, prompt)
}

// ExtractActions tries Ollama first, falls back to heuristics on any error.
func (f *FallbackEngine) ExtractActions(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error) {
	if f.ollama != nil {
		actions, err := f.ollama.ExtractActions(ctx, email, prompt)
		if err == nil {
			return actions, nil
		}
		f.logFallback("action extraction", err)
	}
	return f.heuristic.ExtractActions(ctx, email, prompt)
}

// Summarize tries Ollama first, falls back to heuristics on any error.
func (f *FallbackEngine) Summarize(ctx context.Context, email inboxdomain.Email, prompt string) (string, error) {
	if f.ollama != nil {
		summary, err := f.ollama.Summarize(ctx, email, prompt)
		if err == nil {
			return summary, nil
		}
		f.logFallback("summarization", err)
	}
	return f.heuristic.Summarize(ctx, email, prompt)
}

// DraftReply tries Ollama first, falls back to heuristics on any error.
func (f *FallbackEngine) DraftReply(ctx context.Context, email inboxdomain.Email, prompt string, opts DraftOptions) (*Draft, error) {
	if f.ollama != nil {
		draft, err := f.ollama.DraftReply(ctx, email, prompt, opts)
		if err == nil {
			return draft, nil
		}
		f.logFallback("reply drafting", err)
	}
	return f.heuristic.DraftReply(ctx, email, prompt, opts)
}

func (f *FallbackEngine) logFallback(op string, err error) {
	if isConnectionError(err) {
		log.Printf("[AI] Ollama connection failed during %s: %v, falling back to heuristics", op, err)
		return
	}
	log.Printf("[AI] Ollama error during %s: %v, falling back to heuristics", op, err)
}
