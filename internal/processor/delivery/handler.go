package delivery

import (
	"net/http"

	"mail-agent-backend/internal/processor/usecase"
	"mail-agent-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type ProcessorHandler struct {
	session     *session.Session
	processorUc usecase.ProcessorUsecase
}

func NewProcessorHandler(sess *session.Session, processorUc usecase.ProcessorUsecase) *ProcessorHandler {
	return &ProcessorHandler{
		session:     sess,
		processorUc: processorUc,
	}
}

// POST /api/inbox/process
// Runs the ingestion pipeline over the session inbox with the session
// prompts and replaces the stored process state with the result.
func (h *ProcessorHandler) ProcessInbox(c *gin.Context) {
	records, err := h.processorUc.Ingest(c.Request.Context(), h.session.Emails, h.session.Prompts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.session.Processed = records
	c.JSON(http.StatusOK, gin.H{"processed": records, "count": len(records)})
}

// GET /api/processed/:id
func (h *ProcessorHandler) GetProcessed(c *gin.Context) {
	record, err := h.processorUc.GetProcessed(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "processed record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
