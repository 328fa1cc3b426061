package session

import (
	draftdomain "mail-agent-backend/internal/draft/domain"
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	inboxrepo "mail-agent-backend/internal/inbox/repository"
	procdomain "mail-agent-backend/internal/processor/domain"
	promptsdomain "mail-agent-backend/internal/prompts/domain"
	promptsrepo "mail-agent-backend/internal/prompts/repository"
)

// Session is the explicit mutable state of one user session: the loaded
// inbox, the processed results the user has seen, the prompt configuration
// in effect, and the draft being edited. The core stores stay stateless
// apart from their own documents; everything the front end "remembers"
// lives here.
type Session struct {
	Emails      []inboxdomain.Email
	Processed   []procdomain.ProcessedRecord
	Prompts     promptsdomain.PromptConfig
	DraftEditor DraftEditor
}

// DraftEditor holds the in-progress draft between generation and save.
type DraftEditor struct {
	Draft   *draftdomain.StoredDraft
	EmailID *inboxdomain.ID
}

// New initializes the session defaults exactly once: emails from the inbox
// source (missing source means an empty inbox), no processed results yet,
// prompts from the configuration store, and an empty draft editor.
func New(inboxRepo inboxrepo.InboxRepository, promptRepo promptsrepo.PromptRepository) (*Session, error) {
	emails, err := inboxRepo.Load()
	if err != nil {
		return nil, err
	}
	return &Session{
		Emails:    emails,
		Processed: []procdomain.ProcessedRecord{},
		Prompts:   promptRepo.GetAll(),
	}, nil
}
