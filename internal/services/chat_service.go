package services

import (
	"context"
	"sync"

	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/store"
)

// ChatService owns the conversation log and the round trip to the
// companion. One outstanding request per chat: the in-flight flag is an
// advisory guard mirroring the disabled send button of the UI.
type ChatService struct {
	chat      *store.ChatStore
	companion *CompanionService

	mu       sync.Mutex
	inFlight map[int64]bool
}

func NewChatService(chat *store.ChatStore, companion *CompanionService) *ChatService {
	return &ChatService{
		chat:      chat,
		companion: companion,
		inFlight:  make(map[int64]bool),
	}
}

// History returns the full conversation in append order.
func (s *ChatService) History() []domain.ChatMessage {
	return s.chat.History()
}

// Busy reports whether a send from this chat is still outstanding.
func (s *ChatService) Busy(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[chatID]
}

// Send appends the user message, asks the companion for a reply with the
// prior history, appends the reply and returns it. The reply text is
// always presentable: provider failures surface as the fixed apology.
func (s *ChatService) Send(ctx context.Context, chatID int64, text string) (domain.ChatMessage, error) {
	s.mu.Lock()
	if s.inFlight[chatID] {
		s.mu.Unlock()
		return domain.ChatMessage{}, apperrors.ErrChatBusy
	}
	s.inFlight[chatID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, chatID)
		s.mu.Unlock()
	}()

	// History is snapshotted before the new message joins the log, so
	// the provider sees it once, as the trailing prompt line.
	history := s.chat.History()
	s.chat.Append(domain.SenderUser, text)

	replyText := s.companion.Reply(ctx, text, history)
	reply := s.chat.Append(domain.SenderCompanion, replyText)
	return reply, nil
}
