package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingua/backend/internal/audio"
	"lingua/backend/internal/config"
	"lingua/backend/internal/db"
	"lingua/backend/internal/handler"
	transport "lingua/backend/internal/http"
	"lingua/backend/internal/logger"
	"lingua/backend/internal/network"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
	"lingua/backend/internal/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := snowflake.Init(0); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	provider, err := ai.NewProvider(ai.Config{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		BaseURL:  cfg.AIBaseURL,
		Model:    cfg.AIModel,
		Voice:    cfg.AIVoice,
	})
	if err != nil {
		log.Fatalf("init AI provider: %v", err)
	}

	store := repository.NewBlobStore(dbConn)

	historyService := service.NewHistoryService(store)
	translatorService := service.NewTranslatorService(provider, historyService, ai.NewRateLimiter(cfg.AIRateQPS))
	ingestService := service.NewIngestService(service.DefaultMaxArtifactSize)
	pageService := service.NewPageService(network.NewClient(30*time.Second), translatorService)
	exportService := service.NewExportService()
	authService := service.NewAuthService(cfg.Username, cfg.Password)

	recorder := audio.NewRecorder(audio.CaptureSampleRate)
	player := audio.NewPlayer()

	authHandler := handler.NewAuthHandler(authService)
	translateHandler := handler.NewTranslateHandler(translatorService, pageService, ingestService)
	speechHandler := handler.NewSpeechHandler(translatorService, ingestService, recorder, player, cfg.AIVoice)
	historyHandler := handler.NewHistoryHandler(historyService, translatorService)
	ingestHandler := handler.NewIngestHandler(ingestService)
	exportHandler := handler.NewExportHandler(exportService)

	router := transport.NewRouter(
		authService,
		authHandler,
		translateHandler,
		speechHandler,
		historyHandler,
		ingestHandler,
		exportHandler,
		cfg.StaticDir,
	)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		dbConn.Close()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
