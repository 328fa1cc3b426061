package repository

import (
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/pkg/jsonstore"
)

// InboxRepository defines the interface for reading the inbox source
type InboxRepository interface {
	// Load reads all emails from the backing JSON document. A missing
	// document yields an empty inbox, never an error; a document that
	// exists but fails to parse is propagated.
	Load() ([]inboxdomain.Email, error)
}

// inboxRepository implements InboxRepository over a JSON file source
type inboxRepository struct {
	path string
}

// NewInboxRepository creates a new instance of inboxRepository
func NewInboxRepository(path string) InboxRepository {
	return &inboxRepository{path: path}
}

func (r *inboxRepository) Load() ([]inboxdomain.Email, error) {
	var emails []inboxdomain.Email
	ok, err := jsonstore.Load(r.path, &emails)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []inboxdomain.Email{}, nil
	}
	return emails, nil
}
