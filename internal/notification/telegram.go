package notification

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/logger"
)

// TelegramNotifier delivers reminders as Telegram messages to every
// chat that enabled notifications in settings. Dispatch is
// fire-and-forget; with zero subscribed chats it no-ops silently, the
// same way an un-granted notification permission would.
type TelegramNotifier struct {
	api *tgbotapi.BotAPI

	mu    sync.RWMutex
	chats map[int64]bool
}

func NewTelegramNotifier(api *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{
		api:   api,
		chats: make(map[int64]bool),
	}
}

// Subscribe opts a chat into reminder delivery.
func (n *TelegramNotifier) Subscribe(chatID int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chats[chatID] = true
}

// Unsubscribe opts a chat out.
func (n *TelegramNotifier) Unsubscribe(chatID int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.chats, chatID)
}

// Subscribed reports whether a chat receives reminders.
func (n *TelegramNotifier) Subscribed(chatID int64) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.chats[chatID]
}

// Notify sends title and body to all subscribed chats. Send failures
// are logged and dropped; there is no retry and no delivery tracking.
func (n *TelegramNotifier) Notify(title, body string) {
	n.mu.RLock()
	targets := make([]int64, 0, len(n.chats))
	for chatID := range n.chats {
		targets = append(targets, chatID)
	}
	n.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	text := fmt.Sprintf("🔔 *%s*\n\n%s", title, body)
	for _, chatID := range targets {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "Markdown"
		if _, err := n.api.Send(msg); err != nil {
			logger.Error("Failed to deliver reminder", "chat_id", chatID, "error", err)
		}
	}
}
