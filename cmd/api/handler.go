package api

import (
	agentDelivery "mail-agent-backend/internal/agent/delivery"
	draftDelivery "mail-agent-backend/internal/draft/delivery"
	inboxDelivery "mail-agent-backend/internal/inbox/delivery"
	processorDelivery "mail-agent-backend/internal/processor/delivery"
	promptsDelivery "mail-agent-backend/internal/prompts/delivery"
	"mail-agent-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config           *config.Config
	inboxHandler     *inboxDelivery.InboxHandler
	promptHandler    *promptsDelivery.PromptHandler
	processorHandler *processorDelivery.ProcessorHandler
	agentHandler     *agentDelivery.AgentHandler
	draftHandler     *draftDelivery.DraftHandler
}

func NewHandler(cfg *config.Config, inboxHandler *inboxDelivery.InboxHandler, promptHandler *promptsDelivery.PromptHandler, processorHandler *processorDelivery.ProcessorHandler, agentHandler *agentDelivery.AgentHandler, draftHandler *draftDelivery.DraftHandler) *Handler {
	return &Handler{
		config:           cfg,
		inboxHandler:     inboxHandler,
		promptHandler:    promptHandler,
		processorHandler: processorHandler,
		agentHandler:     agentHandler,
		draftHandler:     draftHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
