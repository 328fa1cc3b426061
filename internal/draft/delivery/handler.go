package delivery

import (
	"net/http"

	draftdomain "mail-agent-backend/internal/draft/domain"
	"mail-agent-backend/internal/draft/repository"
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/internal/session"
	"mail-agent-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	session   *session.Session
	draftRepo repository.DraftRepository
	engine    ai.Engine
}

func NewDraftHandler(sess *session.Session, draftRepo repository.DraftRepository, engine ai.Engine) *DraftHandler {
	return &DraftHandler{
		session:   sess,
		draftRepo: draftRepo,
		engine:    engine,
	}
}

// GenerateDraftRequest controls reply generation. Followups default to on.
type GenerateDraftRequest struct {
	Tone             string `json:"tone"`
	IncludeFollowups *bool  `json:"include_followups"`
}

// POST /api/emails/:id/draft
// Generates a reply draft for the email and parks it in the session draft
// editor; nothing is persisted until the user saves it.
func (h *DraftHandler) GenerateDraft(c *gin.Context) {
	email := inboxdomain.FindEmail(h.session.Emails, c.Param("id"))
	if email == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
		return
	}

	var req GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := ai.DefaultDraftOptions()
	if req.Tone != "" {
		opts.Tone = req.Tone
	}
	if req.IncludeFollowups != nil {
		opts.IncludeFollowups = *req.IncludeFollowups
	}

	draft, err := h.engine.DraftReply(c.Request.Context(), *email, h.session.Prompts.AutoReplyPrompt, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	emailID := email.ID
	h.session.DraftEditor = session.DraftEditor{
		Draft: &draftdomain.StoredDraft{
			EmailID:   &emailID,
			Subject:   draft.Subject,
			Body:      draft.Body,
			Followups: draft.Followups,
			Metadata:  draft.Metadata,
		},
		EmailID: &emailID,
	}

	c.JSON(http.StatusOK, draft)
}

// SaveDraftRequest is a draft the user wants to keep. A zero/absent id
// means "new draft"; a known id replaces the stored entry.
type SaveDraftRequest struct {
	ID        int              `json:"id"`
	EmailID   *inboxdomain.ID  `json:"email_id"`
	Subject   string           `json:"subject" binding:"required"`
	Body      string           `json:"body"`
	Followups []string         `json:"followups"`
	Metadata  ai.DraftMetadata `json:"metadata"`
}

// POST /api/drafts
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := draftdomain.StoredDraft{
		ID:        req.ID,
		EmailID:   req.EmailID,
		Subject:   req.Subject,
		Body:      req.Body,
		Followups: req.Followups,
		Metadata:  req.Metadata,
	}
	if draft.Followups == nil {
		draft.Followups = []string{}
	}

	if err := h.draftRepo.AddOrUpdate(&draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GET /api/drafts
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	drafts := h.draftRepo.All()
	c.JSON(http.StatusOK, gin.H{"drafts": drafts, "total": len(drafts)})
}
