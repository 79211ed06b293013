package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomstager/internal/catalog"
	"roomstager/internal/config"
	"roomstager/internal/generate"
	"roomstager/internal/media"
	"roomstager/internal/rooms"
	"roomstager/internal/server"
	"roomstager/internal/vision"
)

func main() {
	cfg := config.FromEnv()

	ctx := context.Background()
	store, err := catalog.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init catalog: %v", err)
	}
	defer store.Close()
	if cfg.DatabaseURL == "" {
		log.Println("catalog: using built-in sample data (DATABASE_URL missing)")
	}

	var saver media.Saver
	if cfg.Media.Bucket != "" && cfg.Media.Region != "" {
		saver, err = media.NewS3Saver(ctx, media.Config{
			Bucket:         cfg.Media.Bucket,
			Region:         cfg.Media.Region,
			Endpoint:       cfg.Media.Endpoint,
			PublicURL:      cfg.Media.PublicURL,
			KeyPrefix:      cfg.Media.KeyPrefix,
			ForcePathStyle: cfg.Media.ForcePathStyle,
		})
		if err != nil {
			log.Fatalf("failed to init S3 storage: %v", err)
		}
	} else {
		saver, err = media.NewDirSaver(cfg.GeneratedDir)
		if err != nil {
			log.Fatalf("failed to init local generated storage: %v", err)
		}
		log.Printf("media: generated images stored under %s (S3 config missing)", cfg.GeneratedDir)
	}

	var analyzer vision.Analyzer
	if cfg.Gemini.APIKey != "" {
		analyzer = vision.NewGeminiAnalyzer(cfg.Gemini.APIKey, cfg.Gemini.VisionModel, 60*time.Second)
	} else {
		log.Println("vision: analyzer disabled, using fallback room description (GEMINI_API_KEY missing)")
	}

	orchestrator := generate.NewOrchestrator(
		generate.NewHuggingFace(cfg.HuggingFace.APIToken, cfg.HuggingFace.Model),
		generate.NewProdia(cfg.Prodia.APIKey),
		generate.NewImagenProvider(
			generate.NewVertexImagen(generate.VertexImagenConfig{
				ProjectID:          cfg.Vertex.ProjectID,
				Location:           cfg.Vertex.Location,
				Model:              cfg.Vertex.Model,
				ServiceAccountJSON: cfg.Vertex.ServiceAccountJSON,
			}),
			generate.NewGeminiImagen(cfg.Gemini.APIKey, cfg.Gemini.ImageModel),
		),
	)

	roomHandler := rooms.Handler{
		Catalog:   store,
		Analyzer:  analyzer,
		Generator: orchestrator,
		Saver:     saver,
	}

	staticFS := http.FileServer(http.Dir("web"))
	srv := server.New(cfg.Port, roomHandler, staticFS)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("shutting down server...")
		if err := srv.Close(); err != nil {
			log.Printf("server close error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
