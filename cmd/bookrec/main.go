package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/nicholas-gates/book-recommendations/internal/archive"
	"github.com/nicholas-gates/book-recommendations/internal/cli"
	"github.com/nicholas-gates/book-recommendations/internal/config"
	"github.com/nicholas-gates/book-recommendations/internal/recommender"
)

func main() {
	godotenv.Load(".env.local")

	// Keep library logs out of the interactive session
	logFile, err := os.OpenFile("bookrec.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] Failed to load config: %v", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		os.Stderr.WriteString("Error: GEMINI_API_KEY is not set\n")
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to create genai client: %v", err)
	}

	llm := recommender.NewGeminiClient(client, cfg.Model)
	params := cfg.Params()

	app := cli.New(
		recommender.NewBookRecommender(llm, params),
		recommender.NewMediaRecommender(llm, params),
		archive.NewWriter(cfg.ArtifactDir),
		os.Stdin,
		os.Stdout,
	)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}
