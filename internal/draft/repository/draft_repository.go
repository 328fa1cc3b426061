package repository

import (
	draftdomain "mail-agent-backend/internal/draft/domain"
	"mail-agent-backend/pkg/jsonstore"
)

// DraftRepository defines the interface for the saved-draft collection
type DraftRepository interface {
	// AddOrUpdate persists the draft. A draft without an id gets the next
	// sequential id and is appended; a draft with a known id replaces the
	// existing entry in place.
	AddOrUpdate(draft *draftdomain.StoredDraft) error
	// All returns a copy of the collection.
	All() []draftdomain.StoredDraft
}

// draftRepository implements DraftRepository over a JSON file
type draftRepository struct {
	path   string
	drafts []draftdomain.StoredDraft
}

// NewDraftRepository creates a new instance of draftRepository, loading the
// backing document. A missing document yields an empty collection; a
// malformed one is propagated.
func NewDraftRepository(path string) (DraftRepository, error) {
	r := &draftRepository{path: path, drafts: []draftdomain.StoredDraft{}}
	if _, err := jsonstore.Load(path, &r.drafts); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *draftRepository) AddOrUpdate(draft *draftdomain.StoredDraft) error {
	if draft.ID == 0 {
		draft.ID = len(r.drafts) + 1
		r.drafts = append(r.drafts, *draft)
		return jsonstore.Save(r.path, r.drafts)
	}

	replaced := false
	for i := range r.drafts {
		if r.drafts[i].ID == draft.ID {
			r.drafts[i] = *draft
			replaced = true
			break
		}
	}
	if !replaced {
		r.drafts = append(r.drafts, *draft)
	}
	return jsonstore.Save(r.path, r.drafts)
}

func (r *draftRepository) All() []draftdomain.StoredDraft {
	out := make([]draftdomain.StoredDraft, len(r.drafts))
	copy(out, r.drafts)
	return out
}
