package delivery

import (
	"net/http"

	promptsdomain "mail-agent-backend/internal/prompts/domain"
	"mail-agent-backend/internal/prompts/repository"
	"mail-agent-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	session    *session.Session
	promptRepo repository.PromptRepository
}

func NewPromptHandler(sess *session.Session, promptRepo repository.PromptRepository) *PromptHandler {
	return &PromptHandler{
		session:    sess,
		promptRepo: promptRepo,
	}
}

// GET /api/prompts
func (h *PromptHandler) GetPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, h.promptRepo.GetAll())
}

// PUT /api/prompts
// Partial update: only the keys present in the body are overwritten.
func (h *PromptHandler) UpdatePrompts(c *gin.Context) {
	var update promptsdomain.PromptUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged, err := h.promptRepo.Update(update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.session.Prompts = merged
	c.JSON(http.StatusOK, merged)
}
