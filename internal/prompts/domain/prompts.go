package domain

// PromptConfig holds the three user-editable prompt strings that steer
// inference. All three keys always exist; a missing backing file yields
// empty strings.
type PromptConfig struct {
	CategorizationPrompt string `json:"categorization_prompt"`
	ActionItemPrompt     string `json:"action_item_prompt"`
	AutoReplyPrompt      string `json:"auto_reply_prompt"`
}

// PromptUpdate is a partial update: nil fields leave the stored value
// untouched.
type PromptUpdate struct {
	CategorizationPrompt *string `json:"categorization_prompt"`
	ActionItemPrompt     *string `json:"action_item_prompt"`
	AutoReplyPrompt      *string `json:"auto_reply_prompt"`
}
