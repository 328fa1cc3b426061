package usecase

import (
	"context"
	"fmt"
	"strings"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
	procdomain "mail-agent-backend/internal/processor/domain"
	promptsdomain "mail-agent-backend/internal/prompts/domain"
	"mail-agent-backend/pkg/ai"
)

// AgentUsecase routes free-text questions to the right inference operation,
// for a single email or across the whole inbox.
type AgentUsecase interface {
	// AnswerQuestion answers a question about one email. processed, when
	// non-nil, supplies pre-computed categories and actions.
	AnswerQuestion(ctx context.Context, email inboxdomain.Email, query string, prompts promptsdomain.PromptConfig, processed *procdomain.ProcessedRecord) (string, error)
	// AnswerInboxQuestion answers a question across all emails, lazily
	// processing any email missing from the given records.
	AnswerInboxQuestion(ctx context.Context, emails []inboxdomain.Email, processed []procdomain.ProcessedRecord, query string, prompts promptsdomain.PromptConfig) (string, error)
}

// agentUsecase implements AgentUsecase
type agentUsecase struct {
	engine ai.Engine
}

// NewAgentUsecase creates a new instance of agentUsecase
func NewAgentUsecase(engine ai.Engine) AgentUsecase {
	return &agentUsecase{engine: engine}
}

// Query classification is by substring, first match wins:
// summarize > task/action > reply/draft > urgent/priority > default summary.
func (u *agentUsecase) AnswerQuestion(ctx context.Context, email inboxdomain.Email, query string, prompts promptsdomain.PromptConfig, processed *procdomain.ProcessedRecord) (string, error) {
	lowered := strings.ToLower(query)

	var categories, actions []string
	if processed != nil {
		categories = processed.Categories
		actions = processed.Actions
	}

	switch {
	case strings.Contains(lowered, "summarize"):
		return u.engine.Summarize(ctx, email, prompts.CategorizationPrompt)

	case strings.Contains(lowered, "task") || strings.Contains(lowered, "action"):
		use := actions
		if len(use) == 0 {
			var err error
			use, err = u.engine.ExtractActions(ctx, email, prompts.ActionItemPrompt)
			if err != nil {
				return "", err
			}
		}
		return strings.Join(use, "\n"), nil

	case strings.Contains(lowered, "reply") || strings.Contains(lowered, "draft"):
		draft, err := u.engine.DraftReply(ctx, email, prompts.AutoReplyPrompt, ai.DraftOptions{
			Tone:             queryTone(lowered),
			IncludeFollowups: true,
			Categories:       categories,
			Actions:          actions,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Subject: %s\n\n%s", draft.Subject, draft.Body), nil

	case strings.Contains(lowered, "urgent") || strings.Contains(lowered, "priority"):
		tags := categories
		if len(tags) == 0 {
			var err error
			tags, err = u.engine.Categorize(ctx, email, prompts.CategorizationPrompt)
			if err != nil {
				return "", err
			}
		}
		if containsTag(tags, "urgent") {
			return "This email is tagged as urgent.", nil
		}
		return "This email does not appear urgent.", nil

	default:
		summary, err := u.engine.Summarize(ctx, email, prompts.CategorizationPrompt)
		if err != nil {
			return "", err
		}
		return "Here's a quick summary: " + summary, nil
	}
}

// Inbox-wide precedence differs from the single-email router:
// urgent > task/action > summarize/overview > draft/reply > status line.
func (u *agentUsecase) AnswerInboxQuestion(ctx context.Context, emails []inboxdomain.Email, processed []procdomain.ProcessedRecord, query string, prompts promptsdomain.PromptConfig) (string, error) {
	lowered := strings.ToLower(query)

	lookup := make(map[string]*procdomain.ProcessedRecord, len(processed))
	for i := range processed {
		lookup[string(processed[i].ID)] = &processed[i]
	}
	for _, email := range emails {
		if _, err := u.ensureProcessedEntry(ctx, email, prompts, lookup); err != nil {
			return "", err
		}
	}

	switch {
	case strings.Contains(lowered, "urgent"):
		var urgent []string
		for _, email := range emails {
			if containsTag(lookup[string(email.ID)].Categories, "urgent") {
				urgent = append(urgent, formatEmailLine(email))
			}
		}
		if len(urgent) == 0 {
			return "No urgent emails at the moment.", nil
		}
		return strings.Join(urgent, "\n"), nil

	case strings.Contains(lowered, "task") || strings.Contains(lowered, "action"):
		var lines []string
		for _, email := range emails {
			record := lookup[string(email.ID)]
			lines = append(lines, formatEmailLine(email)+" -> "+strings.Join(record.Actions, "; "))
		}
		return strings.Join(lines, "\n"), nil

	case strings.Contains(lowered, "summarize") || strings.Contains(lowered, "overview"):
		var lines []string
		for _, email := range emails {
			summary, err := u.engine.Summarize(ctx, email, prompts.CategorizationPrompt)
			if err != nil {
				return "", err
			}
			lines = append(lines, formatEmailLine(email)+" :: "+summary)
		}
		return strings.Join(lines, "\n"), nil

	case strings.Contains(lowered, "draft") || strings.Contains(lowered, "reply"):
		var lines []string
		for _, email := range emails {
			record := lookup[string(email.ID)]
			draft, err := u.engine.DraftReply(ctx, email, prompts.AutoReplyPrompt, ai.DraftOptions{
				Tone:             queryTone(lowered),
				IncludeFollowups: true,
				Categories:       record.Categories,
				Actions:          record.Actions,
			})
			if err != nil {
				return "", err
			}
			lines = append(lines, formatEmailLine(email)+" -> "+draft.Subject)
		}
		return strings.Join(lines, "\n"), nil

	default:
		return fmt.Sprintf("Processed %d of %d emails. Try asking for urgent emails, summaries, or tasks.", len(lookup), len(emails)), nil
	}
}

// ensureProcessedEntry lazily computes a record for an email missing from
// the lookup. The lookup is mutated; the stored process state is not.
func (u *agentUsecase) ensureProcessedEntry(ctx context.Context, email inboxdomain.Email, prompts promptsdomain.PromptConfig, lookup map[string]*procdomain.ProcessedRecord) (*procdomain.ProcessedRecord, error) {
	key := string(email.ID)
	if record, ok := lookup[key]; ok {
		return record, nil
	}

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

	record := &procdomain.ProcessedRecord{
		ID:         email.ID,
		Categories: categories,
		Actions:    actions,
		Draft:      draft,
	}
	lookup[key] = record
	return record, nil
}

func formatEmailLine(email inboxdomain.Email) string {
	return fmt.Sprintf("#%s %s — %s", email.ID, email.Subject, email.Timestamp)
}

func queryTone(loweredQuery string) string {
	if strings.Contains(loweredQuery, "friendly") {
		return "friendly"
	}
	return "neutral"
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
