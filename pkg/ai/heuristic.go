package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
)

// Category vocabulary. Tags are appended in this fixed order when their
// keyword group matches; "general" only ever appears alone, as the fallback.
var categoryGroups = []struct {
	tag      string
	keywords []string
}{
	{"urgent", []string{"urgent", "asap", "immediately"}},
	{"meeting", []string{"meeting", "schedule", "calendar"}},
	{"finance", []string{"invoice", "payment", "billing", "budget"}},
	{"status", []string{"update", "status", "progress"}},
}

var (
	actionPrefixes = []string{"please", "kindly", "action:", "todo:", "request:"}
	actionTokens   = []string{"due", "deadline", "send", "review", "approve"}
)

// NoActionsSentinel is the single entry returned when a body contains no
// qualifying action lines.
const NoActionsSentinel = "No explicit action items detected."

// HeuristicEngine is a lightweight, offline inference engine used for demos
// and testing. All of its operations are deterministic rule-based
// approximations of an LLM: the prompt argument is accepted for contract
// compatibility and echoed into draft metadata, but the heuristics never
// interpret its content.
type HeuristicEngine struct {
	now func() time.Time
}

// NewHeuristicEngine creates a new heuristic engine.
func NewHeuristicEngine() *HeuristicEngine {
	return &HeuristicEngine{now: time.Now}
}

// Categorize infers simple category tags based on keyword heuristics.
func (e *HeuristicEngine) Categorize(_ context.Context, email inboxdomain.Email, _ string) ([]string, error) {
	text := strings.ToLower(email.Subject + " " + email.Body)
	var tags []string
	for _, group := range categoryGroups {
		if containsAny(text, group.keywords) {
			tags = append(tags, group.tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, "general")
	}
	return tags, nil
}

// ExtractActions pulls out basic action items by scanning for imperative or
// request cues. Qualifying lines keep their original casing, trimmed.
func (e *HeuristicEngine) ExtractActions(_ context.Context, email inboxdomain.Email, _ string) ([]string, error) {
	var actions []string
	for _, line := range strings.Split(email.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		lowered := strings.ToLower(trimmed)
		if lowered == "" {
			continue
		}
		if hasAnyPrefix(lowered, actionPrefixes) || containsAny(lowered, actionTokens) {
			actions = append(actions, trimmed)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, NoActionsSentinel)
	}
	return actions, nil
}

// Summarize returns a short, human-readable summary: the sender, the
// subject, and the first sentence of the body capped at 140 characters.
func (e *HeuristicEngine) Summarize(_ context.Context, email inboxdomain.Email, _ string) (string, error) {
	sender := email.From
	if sender == "" {
		sender = "Unknown"
	}
	subject := email.Subject
	if subject == "" {
		subject = "No subject"
	}
	summary := fmt.Sprintf("%s wrote about '%s'. %s", sender, subject, firstSentence(email.Body))
	return strings.TrimSpace(summary), nil
}

// DraftReply creates a basic reply draft using tone guidance and whatever
// categories/actions the caller already computed.
func (e *HeuristicEngine) DraftReply(ctx context.Context, email inboxdomain.Email, prompt string, opts DraftOptions) (*Draft, error) {
	tone := opts.Tone
	if tone == "" {
		tone = "neutral"
	}
	categories := opts.Categories
	if len(categories) == 0 {
		categories, _ = e.Categorize(ctx, email, prompt)
	}
	actions := opts.Actions
	if len(actions) == 0 {
		actions, _ = e.ExtractActions(ctx, email, prompt)
	}

	// A missing subject keeps the doubled "Re: Re: (no subject)" of the
	// original agent; downstream consumers rely on the literal text.
	subject := email.Subject
	if subject == "" {
		subject = "Re: (no subject)"
	}
	sender := email.From
	if sender == "" {
		sender = "Recipient"
	}
	summary, _ := e.Summarize(ctx, email, prompt)

	thanksLine := "Thanks for the update."
	if strings.Contains(strings.ToLower(email.Body), "thank") {
		thanksLine = "Appreciate the details."
	}
	bodyLines := []string{
		fmt.Sprintf("Hi %s,", sender),
		"",
		thanksLine,
		"Here's my quick reply based on the current thread.",
		"",
		fmt.Sprintf("(Tone: %s)", tone),
		"",
		"Best,",
		"Your Email Agent",
	}

	followups := []string{}
	if opts.IncludeFollowups {
		followups = append(followups,
			fmt.Sprintf("Confirm next steps for '%s'.", subject),
			fmt.Sprintf("Schedule a call with %s.", sender),
		)
		if len(opts.Actions) > 0 {
			followups = append(followups, "Review action items: "+strings.Join(firstN(actions, 3), ", "))
		}
	}

	return &Draft{
		Subject:   "Re: " + subject,
		Body:      strings.Join(bodyLines, "\n"),
		Followups: followups,
		Metadata: DraftMetadata{
			Summary:     summary,
			GeneratedAt: e.now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
			Tone:        tone,
			Categories:  categories,
			Actions:     actions,
			PromptUsed:  prompt,
		},
	}, nil
}

// firstSentence returns the body text up to the first sentence terminator,
// capped at 140 characters.
func firstSentence(body string) string {
	if idx := strings.IndexAny(body, ".!?"); idx >= 0 {
		body = body[:idx]
	}
	runes := []rune(body)
	if len(runes) > 140 {
		runes = runes[:140]
	}
	return string(runes)
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// nowUTC formats the current time the way draft metadata expects it:
// ISO-8601 UTC with a literal trailing "Z".
func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
