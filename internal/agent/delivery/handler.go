package delivery

import (
	"net/http"

	agentUsecase "mail-agent-backend/internal/agent/usecase"
	inboxdomain "mail-agent-backend/internal/inbox/domain"
	procUsecase "mail-agent-backend/internal/processor/usecase"
	"mail-agent-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	session     *session.Session
	agentUc     agentUsecase.AgentUsecase
	processorUc procUsecase.ProcessorUsecase
}

func NewAgentHandler(sess *session.Session, agentUc agentUsecase.AgentUsecase, processorUc procUsecase.ProcessorUsecase) *AgentHandler {
	return &AgentHandler{
		session:     sess,
		agentUc:     agentUc,
		processorUc: processorUc,
	}
}

// AskRequest carries a free-text question for the agent
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// POST /api/emails/:id/ask
func (h *AgentHandler) AskEmail(c *gin.Context) {
	email := inboxdomain.FindEmail(h.session.Emails, c.Param("id"))
	if email == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reuse the persisted processing result when the email has one.
	processed, err := h.processorUc.GetProcessed(string(email.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.agentUc.AnswerQuestion(c.Request.Context(), *email, req.Question, h.session.Prompts, processed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// POST /api/inbox/ask
func (h *AgentHandler) AskInbox(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.agentUc.AnswerInboxQuestion(c.Request.Context(), h.session.Emails, h.session.Processed, req.Question, h.session.Prompts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
