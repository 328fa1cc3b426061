package usecase

import (
	"context"
	"log"
	"time"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
	procdomain "mail-agent-backend/internal/processor/domain"
	"mail-agent-backend/internal/processor/repository"
	promptsdomain "mail-agent-backend/internal/prompts/domain"
	"mail-agent-backend/pkg/ai"

	"github.com/google/uuid"
)

// ProcessorUsecase coordinates the ingestion pipeline: categorize, extract
// actions, and draft replies for every email, with the result persisted as
// the latest process state.
type ProcessorUsecase interface {
	ProcessOne(ctx context.Context, email inboxdomain.Email, prompts promptsdomain.PromptConfig) (*procdomain.ProcessedRecord, error)
	Ingest(ctx context.Context, emails []inboxdomain.Email, prompts promptsdomain.PromptConfig) ([]procdomain.ProcessedRecord, error)
	GetProcessed(id string) (*procdomain.ProcessedRecord, error)
}

// processorUsecase implements ProcessorUsecase
type processorUsecase struct {
	engine    ai.Engine
	stateRepo repository.StateRepository
	state     *procdomain.ProcessState
}

// NewProcessorUsecase creates a new instance of processorUsecase, loading
// the last persisted process state.
func NewProcessorUsecase(engine ai.Engine, stateRepo repository.StateRepository) (ProcessorUsecase, error) {
	state, err := stateRepo.Load()
	if err != nil {
		return nil, err
	}
	return &processorUsecase{
		engine:    engine,
		stateRepo: stateRepo,
		state:     state,
	}, nil
}

// ProcessOne runs the full inference pass over a single email.
func (u *processorUsecase) ProcessOne(ctx context.Context, email inboxdomain.Email, prompts promptsdomain.PromptConfig) (*procdomain.ProcessedRecord, error) {
	categories, err := u.engine.Categorize(ctx, email, prompts.CategorizationPrompt)
	if err != nil {
		return nil, err
	}
	actions, err := u.engine.ExtractActions(ctx, email, prompts.ActionItemPrompt)
	if err != nil {
		return nil, err
	}
	draft, err := u.engine.DraftReply(ctx, email, prompts.AutoReplyPrompt, ai.DraftOptions{
		Tone:             "neutral",
		IncludeFollowups: true,
		Categories:       categories,
		Actions:          actions,
	})
	if err != nil {
		return nil, err
	}
	return &procdomain.ProcessedRecord{
		ID:         email.ID,
		Categories: categories,
		Actions:    actions,
		Draft:      draft,
	}, nil
}

// Ingest processes every email in input order and replaces the stored
// process state wholesale with the new sequence.
func (u *processorUsecase) Ingest(ctx context.Context, emails []inboxdomain.Email, prompts promptsdomain.PromptConfig) ([]procdomain.ProcessedRecord, error) {
	records := make([]procdomain.ProcessedRecord, 0, len(emails))
	for _, email := range emails {
		record, err := u.ProcessOne(ctx, email, prompts)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	state := &procdomain.ProcessState{
		RunID:       uuid.NewString(),
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
		Processed:   records,
	}
	if err := u.stateRepo.Save(state); err != nil {
		return nil, err
	}
	u.state = state
	log.Printf("[Processor] Ingested %d emails (run %s)", len(records), state.RunID)
	return records, nil
}

// GetProcessed looks up a record from the last persisted state by
// string-normalized id. A miss is a nil record, not an error.
func (u *processorUsecase) GetProcessed(id string) (*procdomain.ProcessedRecord, error) {
	for i := range u.state.Processed {
		if string(u.state.Processed[i].ID) == id {
			record := u.state.Processed[i]
			return &record, nil
		}
	}
	return nil, nil
}
