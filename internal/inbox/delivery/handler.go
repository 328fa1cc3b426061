package delivery

import (
	"net/http"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/internal/inbox/repository"
	procdomain "mail-agent-backend/internal/processor/domain"
	"mail-agent-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	session   *session.Session
	inboxRepo repository.InboxRepository
}

func NewInboxHandler(sess *session.Session, inboxRepo repository.InboxRepository) *InboxHandler {
	return &InboxHandler{
		session:   sess,
		inboxRepo: inboxRepo,
	}
}

// EmailRow is one inbox listing entry, annotated with the categories from
// the latest processing run when available.
type EmailRow struct {
	ID         inboxdomain.ID `json:"id"`
	From       string         `json:"from"`
	Subject    string         `json:"subject"`
	Timestamp  string         `json:"timestamp"`
	Categories []string       `json:"categories"`
}

// GET /api/emails
func (h *InboxHandler) ListEmails(c *gin.Context) {
	processedByID := make(map[string]*procdomain.ProcessedRecord, len(h.session.Processed))
	for i := range h.session.Processed {
		processedByID[string(h.session.Processed[i].ID)] = &h.session.Processed[i]
	}

	rows := make([]EmailRow, 0, len(h.session.Emails))
	for _, email := range h.session.Emails {
		row := EmailRow{
			ID:         email.ID,
			From:       email.From,
			Subject:    email.Subject,
			Timestamp:  email.Timestamp,
			Categories: []string{},
		}
		if record, ok := processedByID[string(email.ID)]; ok {
			row.Categories = record.Categories
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"emails": rows, "total": len(rows)})
}

// GET /api/emails/:id
func (h *InboxHandler) GetEmailByID(c *gin.Context) {
	email := inboxdomain.FindEmail(h.session.Emails, c.Param("id"))
	if email == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
		return
	}
	c.JSON(http.StatusOK, email)
}

// POST /api/inbox/upload
// The payload must be a JSON array of email objects; anything else is
// rejected here so the core only ever sees a validated inbox.
func (h *InboxHandler) UploadInbox(c *gin.Context) {
	var emails []inboxdomain.Email
	if err := c.ShouldBindJSON(&emails); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded inbox must be a JSON array of emails"})
		return
	}

	h.session.Emails = emails
	c.JSON(http.StatusOK, gin.H{"loaded": len(emails)})
}

// POST /api/inbox/reload
func (h *InboxHandler) ReloadInbox(c *gin.Context) {
	emails, err := h.inboxRepo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.session.Emails = emails
	c.JSON(http.StatusOK, gin.H{"loaded": len(emails)})
}
