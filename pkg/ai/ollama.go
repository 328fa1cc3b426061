package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
)

// OllamaEngine implements Engine using an Ollama local LLM. It is the
// optional real backend behind the same contract as the heuristic baseline;
// none of the heuristic engine's fixed output formats are guaranteed here.
type OllamaEngine struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaEngine creates a new Ollama engine.
func NewOllamaEngine(baseURL, model string) *OllamaEngine {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaEngine{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// generate sends one prompt to the Ollama generate API and returns the raw
// completion text.
func (o *OllamaEngine) generate(ctx context.Context, prompt string) (string, error) {
	url := o.baseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.3,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return strings.TrimSpace(result.Response), nil
}

// Categorize implements Engine. The model is constrained to the fixed tag
// vocabulary; anything it returns outside that vocabulary is dropped.
func (o *OllamaEngine) Categorize(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error) {
	instruction := prompt
	if instruction == "" {
		instruction = "Categorize the email."
	}
	out, err := o.generate(ctx, fmt.Sprintf(`%s

Pick every tag that applies from exactly this list: urgent, meeting, finance, status.
If none applies answer only: general.
Answer with a comma-separated list of tags and nothing else.

Subject: %s
Body:
%s`, instruction, email.Subject, email.Body))
	if err != nil {
		return nil, err
	}

	allowed := map[string]bool{"urgent": true, "meeting": true, "finance": true, "status": true, "general": true}
	var tags []string
	for _, part := range strings.Split(out, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if allowed[tag] {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, "general")
	}
	return tags, nil
}

// ExtractActions implements Engine.
func (o *OllamaEngine) ExtractActions(ctx context.Context, email inboxdomain.Email, prompt string) ([]string, error) {
	instruction := prompt
	if instruction == "" {
		instruction = "Extract the action items from the email."
	}
	out, err := o.generate(ctx, fmt.Sprintf(`%s

List one action item per line, without numbering or bullets.
If there are none, answer exactly: %s

Subject: %s
Body:
%s`, instruction, NoActionsSentinel, email.Subject, email.Body))
	if err != nil {
		return nil, err
	}

	var actions []string
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			actions = append(actions, trimmed)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, NoActionsSentinel)
	}
	return actions, nil
}

// Summarize implements Engine.
func (o *OllamaEngine) Summarize(ctx context.Context, email inboxdomain.Email, prompt string) (string, error) {
	instruction := prompt
	if instruction == "" {
		instruction = "Summarize the email in one short sentence."
	}
	return o.generate(ctx, fmt.Sprintf(`%s

From: %s
Subject: %s
Body:
%s`, instruction, email.From, email.Subject, email.Body))
}

// DraftReply implements Engine. The generated text becomes the draft body;
// subject, followups and metadata keep the shared draft shape so the two
// providers stay interchangeable.
func (o *OllamaEngine) DraftReply(ctx context.Context, email inboxdomain.Email, prompt string, opts DraftOptions) (*Draft, error) {
	tone := opts.Tone
	if tone == "" {
		tone = "neutral"
	}
	instruction := prompt
	if instruction == "" {
		instruction = "Write a short reply to the email."
	}
	body, err := o.generate(ctx, fmt.Sprintf(`%s

Use a %s tone. Answer with the reply body only, no subject line.

From: %s
Subject: %s
Body:
%s`, instruction, tone, email.From, email.Subject, email.Body))
	if err != nil {
		return nil, err
	}

	categories := opts.Categories
	if len(categories) == 0 {
		categories, err = o.Categorize(ctx, email, "")
		if err != nil {
			return nil, err
		}
	}
	actions := opts.Actions
	if len(actions) == 0 {
		actions, err = o.ExtractActions(ctx, email, "")
		if err != nil {
			return nil, err
		}
	}
	summary, err := o.Summarize(ctx, email, "")
	if err != nil {
		return nil, err
	}

	subject := email.Subject
	if subject == "" {
		subject = "Re: (no subject)"
	}
	sender := email.From
	if sender == "" {
		sender = "Recipient"
	}

	followups := []string{}
	if opts.IncludeFollowups {
		followups = append(followups,
			fmt.Sprintf("Confirm next steps for '%s'.", subject),
			fmt.Sprintf("Schedule a call with %s.", sender),
		)
	}

	return &Draft{
		Subject:   "Re: " + subject,
		Body:      body,
		Followups: followups,
		Metadata: DraftMetadata{
			Summary:     summary,
			GeneratedAt: nowUTC(),
			Tone:        tone,
			Categories:  categories,
			Actions:     actions,
			PromptUsed:  prompt,
		},
	}, nil
}
