package domain

import (
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/pkg/ai"
)

// StoredDraft is a persisted draft: a composed or user-edited reply,
// optionally linked to the email it answers. ID 0 means "not yet assigned";
// the repository hands out sequential ids starting at 1.
type StoredDraft struct {
	ID        int              `json:"id"`
	EmailID   *inboxdomain.ID  `json:"email_id"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
	Followups []string         `json:"followups"`
	Metadata  ai.DraftMetadata `json:"metadata"`
}
