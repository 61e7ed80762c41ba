package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/logger"
)

// VoiceHandler turns a Telegram voice note into a transcript and feeds
// it through the normal text flow.
type VoiceHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	textHandler  *TextHandler
	stateManager *state.Manager
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager *state.Manager) *VoiceHandler {
	return &VoiceHandler{
		api:          api,
		deps:         deps,
		textHandler:  NewTextHandler(api, deps, stateManager),
		stateManager: stateManager,
	}
}

// Handle processes a voice message
func (h *VoiceHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	if !h.deps.SpeechSvc.CanListen() {
		msg := tgbotapi.NewMessage(chatID, "ขออภัยครับ ระบบไม่รองรับการสั่งงานด้วยเสียงในขณะนี้")
		_, err := h.api.Send(msg)
		return err
	}

	audio, err := h.downloadVoice(message.Voice.FileID)
	if err != nil {
		logger.Error("Failed to download voice note", "chat_id", chatID, "error", err)
		msg := tgbotapi.NewMessage(chatID, "ขอโทษครับ ผมไม่ได้ยิน — ช่วยพูดอีกครั้งได้ไหมครับ?")
		_, err := h.api.Send(msg)
		return err
	}

	mimeType := message.Voice.MimeType
	if mimeType == "" {
		mimeType = "audio/ogg"
	}

	transcript, err := h.deps.SpeechSvc.Transcribe(ctx, audio, mimeType)
	if err != nil || strings.TrimSpace(transcript) == "" {
		logger.Error("Transcription failed", "chat_id", chatID, "error", err)
		msg := tgbotapi.NewMessage(chatID, "ขอโทษครับ ผมไม่ได้ยิน — ช่วยพูดอีกครั้งได้ไหมครับ?")
		_, err := h.api.Send(msg)
		return err
	}

	echo := tgbotapi.NewMessage(chatID, "🎤 "+transcript)
	if _, err := h.api.Send(echo); err != nil {
		return err
	}

	// The transcript continues exactly as typed text would.
	message.Text = transcript
	return h.textHandler.Handle(ctx, message)
}

func (h *VoiceHandler) downloadVoice(fileID string) ([]byte, error) {
	file, err := h.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	resp, err := http.Get(file.Link(h.api.Token))
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
