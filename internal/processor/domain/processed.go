package domain

import (
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/pkg/ai"
)

// ProcessedRecord is the engine's derived output for one email: category
// tags, action items and an auto-generated reply draft. Records are only
// ever produced by the ingestion pipeline (or the lazy path of the
// inbox-wide agent), never hand-edited.
type ProcessedRecord struct {
	ID         inboxdomain.ID `json:"id"`
	Categories []string       `json:"categories"`
	Actions    []string       `json:"actions"`
	Draft      *ai.Draft      `json:"draft"`
}

// ProcessState is the persisted snapshot of the latest ingestion run. It is
// replaced wholesale on every run; no history is retained. RunID and
// ProcessedAt identify the run and are metadata only: two runs over
// identical input differ in nothing but these and draft timestamps.
type ProcessState struct {
	RunID       string            `json:"run_id,omitempty"`
	ProcessedAt string            `json:"processed_at,omitempty"`
	Processed   []ProcessedRecord `json:"processed"`
}
