package repository

import (
	procdomain "mail-agent-backend/internal/processor/domain"
	"mail-agent-backend/pkg/jsonstore"
)

// StateRepository defines the interface for the process-state store
type StateRepository interface {
	// Load reads the last persisted snapshot. A missing document yields an
	// empty state; a malformed one is propagated.
	Load() (*procdomain.ProcessState, error)
	// Save replaces the whole snapshot document.
	Save(state *procdomain.ProcessState) error
}

// stateRepository implements StateRepository over a JSON file
type stateRepository struct {
	path string
}

// NewStateRepository creates a new instance of stateRepository
func NewStateRepository(path string) StateRepository {
	return &stateRepository{path: path}
}

func (r *stateRepository) Load() (*procdomain.ProcessState, error) {
	state := &procdomain.ProcessState{Processed: []procdomain.ProcessedRecord{}}
	if _, err := jsonstore.Load(r.path, state); err != nil {
		return nil, err
	}
	if state.Processed == nil {
		state.Processed = []procdomain.ProcessedRecord{}
	}
	return state, nil
}

func (r *stateRepository) Save(state *procdomain.ProcessState) error {
	return jsonstore.Save(r.path, state)
}
