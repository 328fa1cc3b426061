package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Email routes
		emails := api.Group("/emails")
		{
			emails.GET("", h.inboxHandler.ListEmails)
			emails.GET("/:id", h.inboxHandler.GetEmailByID)
			emails.POST("/:id/ask", h.agentHandler.AskEmail)
			emails.POST("/:id/draft", h.draftHandler.GenerateDraft)
		}

		// Inbox-level routes
		inbox := api.Group("/inbox")
		{
			inbox.POST("/upload", h.inboxHandler.UploadInbox)
			inbox.POST("/reload", h.inboxHandler.ReloadInbox)
			inbox.POST("/process", h.processorHandler.ProcessInbox)
			inbox.POST("/ask", h.agentHandler.AskInbox)
		}

		// Processed-record lookup
		api.GET("/processed/:id", h.processorHandler.GetProcessed)

		// Prompt configuration - runtime editable
		prompts := api.Group("/prompts")
		{
			prompts.GET("", h.promptHandler.GetPrompts)
			prompts.PUT("", h.promptHandler.UpdatePrompts)
		}

		// Saved drafts
		drafts := api.Group("/drafts")
		{
			drafts.GET("", h.draftHandler.ListDrafts)
			drafts.POST("", h.draftHandler.SaveDraft)
		}
	}
}
