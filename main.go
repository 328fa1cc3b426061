package main

import (
	"log"

	api "mail-agent-backend/cmd/api"
	agentDelivery "mail-agent-backend/internal/agent/delivery"
	agentUsecase "mail-agent-backend/internal/agent/usecase"
	draftDelivery "mail-agent-backend/internal/draft/delivery"
	draftRepo "mail-agent-backend/internal/draft/repository"
	inboxDelivery "mail-agent-backend/internal/inbox/delivery"
	inboxRepo "mail-agent-backend/internal/inbox/repository"
	processorDelivery "mail-agent-backend/internal/processor/delivery"
	processorRepo "mail-agent-backend/internal/processor/repository"
	processorUsecase "mail-agent-backend/internal/processor/usecase"
	promptsDelivery "mail-agent-backend/internal/prompts/delivery"
	promptsRepo "mail-agent-backend/internal/prompts/repository"
	"mail-agent-backend/internal/session"
	"mail-agent-backend/pkg/ai"
	"mail-agent-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize repositories (dependency injection)
	inboxRepository := inboxRepo.NewInboxRepository(cfg.InboxPath)
	promptRepository, err := promptsRepo.NewPromptRepository(cfg.PromptsPath)
	if err != nil {
		log.Fatal("Failed to load prompt configuration:", err)
	}
	stateRepository := processorRepo.NewStateRepository(cfg.StatePath)
	draftRepository, err := draftRepo.NewDraftRepository(cfg.DraftsPath)
	if err != nil {
		log.Fatal("Failed to load draft collection:", err)
	}

	// Initialize inference engine via the provider factory
	engine := ai.NewEngine(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	log.Printf("[AI] Inference engine initialized with provider: %s", cfg.AIProvider)

	// Initialize use cases
	processorUc, err := processorUsecase.NewProcessorUsecase(engine, stateRepository)
	if err != nil {
		log.Fatal("Failed to load process state:", err)
	}
	agentUc := agentUsecase.NewAgentUsecase(engine)

	// Initialize the session context with its defaults
	sess, err := session.New(inboxRepository, promptRepository)
	if err != nil {
		log.Fatal("Failed to initialize session:", err)
	}
	log.Printf("[Session] Loaded %d emails from %s", len(sess.Emails), cfg.InboxPath)

	// Initialize delivery handlers
	inboxHandler := inboxDelivery.NewInboxHandler(sess, inboxRepository)
	promptHandler := promptsDelivery.NewPromptHandler(sess, promptRepository)
	processorHandler := processorDelivery.NewProcessorHandler(sess, processorUc)
	agentHandler := agentDelivery.NewAgentHandler(sess, agentUc, processorUc)
	draftHandler := draftDelivery.NewDraftHandler(sess, draftRepository, engine)

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(cfg, inboxHandler, promptHandler, processorHandler, agentHandler, draftHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
