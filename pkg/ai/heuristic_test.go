package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
)

func TestCategorize(t *testing.T) {
	engine := NewHeuristicEngine()

	tests := []struct {
		name  string
		email inboxdomain.Email
		want  []string
	}{
		{
			name:  "urgent keyword in subject",
			email: inboxdomain.Email{Subject: "URGENT: server down", Body: "fix it"},
			want:  []string{"urgent"},
		},
		{
			name:  "asap counts as urgent",
			email: inboxdomain.Email{Subject: "ping", Body: "need this ASAP"},
			want:  []string{"urgent"},
		},
		{
			name:  "budget and invoice map to finance",
			email: inboxdomain.Email{ID: "1", From: "Bob", Subject: "Budget review", Body: "Please send the invoice by Friday. Thanks!"},
			want:  []string{"finance"},
		},
		{
			name:  "multiple groups keep fixed order",
			email: inboxdomain.Email{Subject: "Status update", Body: "urgent meeting about the invoice"},
			want:  []string{"urgent", "meeting", "finance", "status"},
		},
		{
			name:  "no match falls back to general",
			email: inboxdomain.Email{Subject: "Lunch", Body: "pizza?"},
			want:  []string{"general"},
		},
		{
			name:  "empty email is general",
			email: inboxdomain.Email{},
			want:  []string{"general"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := engine.Categorize(context.Background(), tt.email, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, tags)
		})
	}
}

func TestExtractActions(t *testing.T) {
	engine := NewHeuristicEngine()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "please prefix selects the line with original casing",
			body: "Please send the invoice by Friday. Thanks!",
			want: []string{"Please send the invoice by Friday. Thanks!"},
		},
		{
			name: "todo prefix is case-insensitive",
			body: "Intro line\nTODO: ship the release",
			want: []string{"TODO: ship the release"},
		},
		{
			name: "deadline substring qualifies mid-line",
			body: "The deadline is Monday\nnothing here",
			want: []string{"The deadline is Monday"},
		},
		{
			name: "line order preserved and blanks skipped",
			body: "Kindly reply\n\nreview the doc\nunrelated",
			want: []string{"Kindly reply", "review the doc"},
		},
		{
			name: "no qualifying lines yields the sentinel",
			body: "Hello\nNice weather",
			want: []string{NoActionsSentinel},
		},
		{
			name: "empty body yields the sentinel",
			body: "",
			want: []string{NoActionsSentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := engine.ExtractActions(context.Background(), inboxdomain.Email{Body: tt.body}, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, actions)
		})
	}
}

func TestSummarize(t *testing.T) {
	engine := NewHeuristicEngine()

	tests := []struct {
		name  string
		email inboxdomain.Email
		want  string
	}{
		{
			name:  "first sentence up to the period",
			email: inboxdomain.Email{From: "Bob", Subject: "Budget review", Body: "Please send the invoice by Friday. Thanks!"},
			want:  "Bob wrote about 'Budget review'. Please send the invoice by Friday",
		},
		{
			name:  "question mark terminates the sentence",
			email: inboxdomain.Email{From: "Ann", Subject: "Lunch", Body: "Pizza today? Or sushi."},
			want:  "Ann wrote about 'Lunch'. Pizza today",
		},
		{
			name:  "empty body trims the trailing space",
			email: inboxdomain.Email{From: "Bob", Subject: "Hi"},
			want:  "Bob wrote about 'Hi'.",
		},
		{
			name:  "missing sender and subject get defaults",
			email: inboxdomain.Email{Body: "Short note."},
			want:  "Unknown wrote about 'No subject'. Short note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := engine.Summarize(context.Background(), tt.email, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary)
		})
	}
}

func TestSummarizeTruncatesTo140Chars(t *testing.T) {
	engine := NewHeuristicEngine()

	email := inboxdomain.Email{From: "Bob", Subject: "Long", Body: strings.Repeat("x", 300)}
	summary, err := engine.Summarize(context.Background(), email, "")
	require.NoError(t, err)
	assert.Equal(t, "Bob wrote about 'Long'. "+strings.Repeat("x", 140), summary)
}

func TestDraftReply(t *testing.T) {
	engine := NewHeuristicEngine()
	engine.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	email := inboxdomain.Email{
		ID:      "7",
		From:    "Bob",
		Subject: "Budget review",
		Body:    "Please send the invoice by Friday.",
	}

	draft, err := engine.DraftReply(context.Background(), email, "be brief", DefaultDraftOptions())
	require.NoError(t, err)

	assert.Equal(t, "Re: Budget review", draft.Subject)
	assert.Equal(t, strings.Join([]string{
		"Hi Bob,",
		"",
		"Thanks for the update.",
		"Here's my quick reply based on the current thread.",
		"",
		"(Tone: neutral)",
		"",
		"Best,",
		"Your Email Agent",
	}, "\n"), draft.Body)

	// No actions supplied: exactly the two standard followups.
	assert.Equal(t, []string{
		"Confirm next steps for 'Budget review'.",
		"Schedule a call with Bob.",
	}, draft.Followups)

	assert.Equal(t, "2025-01-02T03:04:05.000000Z", draft.Metadata.GeneratedAt)
	assert.Equal(t, "neutral", draft.Metadata.Tone)
	assert.Equal(t, "be brief", draft.Metadata.PromptUsed)
	assert.Equal(t, []string{"finance"}, draft.Metadata.Categories)
	assert.Equal(t, []string{"Please send the invoice by Friday."}, draft.Metadata.Actions)
	assert.Equal(t, "Bob wrote about 'Budget review'. Please send the invoice by Friday", draft.Metadata.Summary)
}

func TestDraftReplyThankfulBody(t *testing.T) {
	engine := NewHeuristicEngine()

	email := inboxdomain.Email{From: "Ann", Subject: "Re", Body: "Thank you for the report."}
	draft, err := engine.DraftReply(context.Background(), email, "", DefaultDraftOptions())
	require.NoError(t, err)

	assert.Contains(t, draft.Body, "Appreciate the details.")
	assert.NotContains(t, draft.Body, "Thanks for the update.")
}

func TestDraftReplyMissingSubjectKeepsDoubledRe(t *testing.T) {
	engine := NewHeuristicEngine()

	draft, err := engine.DraftReply(context.Background(), inboxdomain.Email{From: "Ann"}, "", DefaultDraftOptions())
	require.NoError(t, err)

	assert.Equal(t, "Re: Re: (no subject)", draft.Subject)
	assert.Contains(t, draft.Followups, "Confirm next steps for 'Re: (no subject)'.")
}

func TestDraftReplyMissingSenderDefaultsToRecipient(t *testing.T) {
	engine := NewHeuristicEngine()

	draft, err := engine.DraftReply(context.Background(), inboxdomain.Email{Subject: "Hi"}, "", DefaultDraftOptions())
	require.NoError(t, err)

	assert.Contains(t, draft.Body, "Hi Recipient,")
	assert.Contains(t, draft.Followups, "Schedule a call with Recipient.")
}

func TestDraftReplySuppliedActionsAddReviewFollowup(t *testing.T) {
	engine := NewHeuristicEngine()

	opts := DefaultDraftOptions()
	opts.Categories = []string{"status"}
	opts.Actions = []string{"a", "b", "c", "d"}

	draft, err := engine.DraftReply(context.Background(), inboxdomain.Email{From: "Bob", Subject: "S"}, "", opts)
	require.NoError(t, err)

	require.Len(t, draft.Followups, 3)
	assert.Equal(t, "Review action items: a, b, c", draft.Followups[2])
	// Supplied values are carried through, not recomputed.
	assert.Equal(t, []string{"status"}, draft.Metadata.Categories)
	assert.Equal(t, []string{"a", "b", "c", "d"}, draft.Metadata.Actions)
}

func TestDraftReplyWithoutFollowups(t *testing.T) {
	engine := NewHeuristicEngine()

	opts := DraftOptions{Tone: "friendly"}
	draft, err := engine.DraftReply(context.Background(), inboxdomain.Email{From: "Bob", Subject: "S"}, "", opts)
	require.NoError(t, err)

	assert.Empty(t, draft.Followups)
	assert.Contains(t, draft.Body, "(Tone: friendly)")
}
