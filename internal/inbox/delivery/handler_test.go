package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inboxdomain "mail-agent-backend/internal/inbox/domain"
	"mail-agent-backend/internal/inbox/repository"
	procdomain "mail-agent-backend/internal/processor/domain"
	"mail-agent-backend/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := &session.Session{
		Emails:    []inboxdomain.Email{},
		Processed: []procdomain.ProcessedRecord{},
	}
	handler := NewInboxHandler(sess, repository.NewInboxRepository(filepath.Join(t.TempDir(), "inbox.json")))

	r := gin.New()
	r.GET("/api/emails", handler.ListEmails)
	r.GET("/api/emails/:id", handler.GetEmailByID)
	r.POST("/api/inbox/upload", handler.UploadInbox)
	r.POST("/api/inbox/reload", handler.ReloadInbox)
	return r, sess
}

func TestUploadInboxRejectsNonArrayPayload(t *testing.T) {
	r, sess := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inbox/upload", strings.NewReader(`{"id": 1}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sess.Emails)
}

func TestUploadInboxAcceptsEmailArray(t *testing.T) {
	r, sess := newTestRouter(t)

	payload := `[{"id": 5, "from": "Ann", "subject": "Hi", "body": "hello", "timestamp": "2024-05-01T10:00:00Z"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inbox/upload", strings.NewReader(payload))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sess.Emails, 1)
	// Numeric source ids are normalized on the way in.
	assert.Equal(t, inboxdomain.ID("5"), sess.Emails[0].ID)
}

func TestListEmailsAnnotatesCategories(t *testing.T) {
	r, sess := newTestRouter(t)
	sess.Emails = []inboxdomain.Email{
		{ID: "1", From: "Bob", Subject: "Budget review", Timestamp: "2024-05-01T10:00:00Z"},
		{ID: "2", From: "Ann", Subject: "Lunch"},
	}
	sess.Processed = []procdomain.ProcessedRecord{
		{ID: "1", Categories: []string{"finance"}},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emails", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Emails []EmailRow `json:"emails"`
		Total  int        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, []string{"finance"}, resp.Emails[0].Categories)
	assert.Empty(t, resp.Emails[1].Categories)
}

func TestGetEmailByIDMiss(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emails/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadInboxMissingSourceYieldsEmptyInbox(t *testing.T) {
	r, sess := newTestRouter(t)
	sess.Emails = []inboxdomain.Email{{ID: "1"}}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/inbox/reload", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sess.Emails)
}
