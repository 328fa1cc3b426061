package repository

import (
	promptsdomain "mail-agent-backend/internal/prompts/domain"
	"mail-agent-backend/pkg/jsonstore"
)

// PromptRepository defines the interface for the prompt configuration store
type PromptRepository interface {
	// Update merges the non-nil fields into the configuration and persists
	// the full document, returning the merged result.
	Update(update promptsdomain.PromptUpdate) (promptsdomain.PromptConfig, error)
	// GetAll returns a copy of the current configuration.
	GetAll() promptsdomain.PromptConfig
}

// promptRepository implements PromptRepository over a JSON file. The
// in-memory configuration is authoritative between writes; every mutation
// rewrites the whole document.
type promptRepository struct {
	path    string
	prompts promptsdomain.PromptConfig
}

// NewPromptRepository creates a new instance of promptRepository, loading
// the backing document. A missing document yields the default (all-empty)
// configuration; a malformed one is propagated.
func NewPromptRepository(path string) (PromptRepository, error) {
	r := &promptRepository{path: path}
	if _, err := jsonstore.Load(path, &r.prompts); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *promptRepository) Update(update promptsdomain.PromptUpdate) (promptsdomain.PromptConfig, error) {
	if update.CategorizationPrompt != nil {
		r.prompts.CategorizationPrompt = *update.CategorizationPrompt
	}
	if update.ActionItemPrompt != nil {
		r.prompts.ActionItemPrompt = *update.ActionItemPrompt
	}
	if update.AutoReplyPrompt != nil {
		r.prompts.AutoReplyPrompt = *update.AutoReplyPrompt
	}
	if err := jsonstore.Save(r.path, r.prompts); err != nil {
		return promptsdomain.PromptConfig{}, err
	}
	return r.prompts, nil
}

func (r *promptRepository) GetAll() promptsdomain.PromptConfig {
	return r.prompts
}
