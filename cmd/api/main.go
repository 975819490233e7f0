package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/config"
	"github.com/jahangir2k04/fitflex-client/internal/database"
	"github.com/jahangir2k04/fitflex-client/internal/routes"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		sugar.Fatalw("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			sugar.Errorw("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := database.EnsureIndexes(ctx, client.Database(cfg.DatabaseName)); err != nil {
		sugar.Fatalw("Failed to create indexes", "error", err)
	}

	// Initialize router
	router := routes.SetupRouter(client, cfg, sugar)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	sugar.Infow("FitFlex is running", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		sugar.Fatalw("Failed to start server", "error", err)
	}
}
