package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/handlers"
	"github.com/vorathons/memory-mate/internal/bot/state"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/logger"
)

// Bot is the Telegram front of the app: a thin polling loop that hands
// every update to the handler chain.
type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
	errorHandler  *apperrors.Handler
}

// NewBot creates the bot and its handler chain.
func NewBot(api *tgbotapi.BotAPI, deps handlers.Dependencies, stateManager *state.Manager) (*Bot, error) {
	if api == nil {
		return nil, fmt.Errorf("telegram api is required")
	}

	logger.Info("Bot authorized", "account", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
		errorHandler:  apperrors.NewHandler(logger.GetLogger()),
	}, nil
}

// Start polls for updates until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			return ctx.Err()
		case update := <-updates:
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				b.errorHandler.Handle(ctx, err)
			}
		}
	}
}
