// @title           EPOS Support Agent API
// @version         1.0.0
// @description     Support-ticket intake and review service for the EPOS retail point-of-sale product. Issues pre-signed upload URLs for bug-report videos, transcribes uploads, drafts structured ticket text with a chat-completion model, and persists ticket records for the review dashboard.

// @host      localhost:3000
// @BasePath  /

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "epos-support-agent/docs"
	"epos-support-agent/internal/config"
	"epos-support-agent/internal/dynamo"
	"epos-support-agent/internal/groq"
	"epos-support-agent/internal/handlers"
	"epos-support-agent/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	storageClient, err := storage.NewClient(ctx, cfg, config.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	dynamoClient, err := dynamo.NewClient(ctx, cfg, config.TicketTable)
	if err != nil {
		log.Fatalf("Failed to initialize dynamo client: %v", err)
	}

	if err := dynamoClient.EnsureTable(ctx); err != nil {
		log.Printf("Warning: table bootstrap failed: %v", err)
		log.Println("Ticket operations will fail until the table exists")
	}

	groqClient := groq.NewClient(cfg.GroqAPIBaseURL, cfg.GroqAPIKey)

	uploadURLHandler := handlers.NewUploadURLHandler(storageClient)
	transcribeHandler := handlers.NewTranscribeHandler(storageClient, groqClient)
	ticketsHandler := handlers.NewTicketsHandler(dynamoClient)

	router := gin.Default()

	// The review dashboard is served from another origin.
	router.Use(cors.Default())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	router.GET("/get-presigned-url", uploadURLHandler.GetPresignedURL)
	router.POST("/transcribe", transcribeHandler.Transcribe)
	router.POST("/createTicket", ticketsHandler.CreateTicket)
	router.GET("/listTickets", ticketsHandler.ListTickets)
	router.POST("/updateTicket", ticketsHandler.UpdateTicket)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
