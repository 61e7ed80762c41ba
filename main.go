package main

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/vorathons/memory-mate/internal/bot"
	"github.com/vorathons/memory-mate/internal/bot/handlers"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/config"
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/logger"
	"github.com/vorathons/memory-mate/internal/notification"
	"github.com/vorathons/memory-mate/internal/services"
	"github.com/vorathons/memory-mate/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Memory Mate...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Configuration loaded")

	loc, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		logger.Fatalf("Unknown reminder timezone %q: %v", cfg.Reminder.Timezone, err)
	}

	ctx := context.Background()

	// Companion provider, selected once at startup.
	var provider domain.CompanionProvider
	var recognizer domain.Recognizer = services.NoopRecognizer{}
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		provider = services.NewOpenAIProvider(cfg.OpenAIAPIKey)
	default:
		gemini, err := services.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatalf("Failed to create Gemini provider: %v", err)
		}
		defer gemini.Close()
		provider = gemini
		recognizer = gemini
	}

	// All state lives in memory, seeded here and gone on exit.
	routines := store.NewRoutineStore(store.SeedRoutines())
	contacts := store.NewContactStore(store.SeedContacts())
	profile := store.NewProfileStore(store.SeedProfile())
	chatLog := store.NewChatStore(store.SeedChat())
	memories := store.NewMemoryStore(store.SeedMemories())

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf("Failed to create Telegram API client: %v", err)
	}

	notifier := notification.NewTelegramNotifier(api)
	companionSvc := services.NewCompanionService(provider)
	speechSvc := services.NewSpeechService(recognizer, services.NoopSynthesizer{})

	deps := handlers.Dependencies{
		RoutineSvc: services.NewRoutineService(routines),
		ContactSvc: services.NewContactService(contacts),
		ProfileSvc: services.NewProfileService(profile),
		ChatSvc:    services.NewChatService(chatLog, companionSvc),
		MemorySvc:  memories,
		SpeechSvc:  speechSvc,
		Notifier:   notifier,
	}

	telegramBot, err := bot.NewBot(api, deps, state.NewManager())
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	reminderSvc := services.NewReminderService(routines, notifier, loc)
	logger.Info("Services initialized")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := reminderSvc.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("Reminder scheduler stopped with error", "error", err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := telegramBot.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("Bot stopped with error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Memory Mate is running. Press Ctrl+C to stop.")
	wg.Wait()
}
