package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/menus"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/domain"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	api             *tgbotapi.BotAPI
	stateManager    *state.Manager
	callbackHandler *CallbackHandler
	commandHandler  *CommandHandler
	textHandler     *TextHandler
	voiceHandler    *VoiceHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager *state.Manager) *UpdateHandler {
	return &UpdateHandler{
		api:             api,
		stateManager:    stateManager,
		callbackHandler: NewCallbackHandler(api, deps, stateManager),
		commandHandler:  NewCommandHandler(api, stateManager),
		textHandler:     NewTextHandler(api, deps, stateManager),
		voiceHandler:    NewVoiceHandler(api, deps, stateManager),
	}
}

// Handle processes a telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.CallbackQuery != nil {
		return h.callbackHandler.Handle(ctx, update.CallbackQuery)
	}

	message := update.Message

	if message.IsCommand() {
		return h.commandHandler.Handle(ctx, message)
	}

	// Everything except commands sits behind the role selector.
	if h.stateManager.GetRole(message.Chat.ID) == domain.RoleNone {
		return menus.SendLogin(h.api, message.Chat.ID)
	}

	if message.Voice != nil {
		return h.voiceHandler.Handle(ctx, message)
	}

	if message.Text != "" {
		return h.textHandler.Handle(ctx, message)
	}

	return nil
}
