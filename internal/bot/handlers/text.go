package handlers

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/keyboards"
	"github.com/vorathons/memory-mate/internal/bot/menus"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/logger"
)

// TextHandler handles free-text messages: the settings forms when a
// form state is pending, otherwise the companion chat.
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager *state.Manager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager *state.Manager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch h.stateManager.GetState(chatID) {
	case state.WaitingForContactName:
		return h.handleContactName(chatID, message.Text)
	case state.WaitingForContactRelation:
		return h.handleContactRelation(chatID, message.Text)
	case state.WaitingForContactPhone:
		return h.handleContactPhone(chatID, message.Text)
	case state.WaitingForProfileName:
		return h.handleProfileField(chatID, "profile_name", message.Text, state.WaitingForProfileSurname, "พิมพ์นามสกุล")
	case state.WaitingForProfileSurname:
		return h.handleProfileField(chatID, "profile_surname", message.Text, state.WaitingForProfileCondition, "พิมพ์โรคประจำตัว / อาการ")
	case state.WaitingForProfileCondition:
		return h.handleProfileCondition(chatID, message.Text)
	case state.WaitingForProfileAddress:
		return h.handleProfileAddress(chatID, message.Text)
	default:
		return h.handleConversation(ctx, message)
	}
}

// handleConversation routes chat-view text through the companion.
func (h *TextHandler) handleConversation(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	if h.stateManager.GetView(chatID) != domain.ViewChat {
		msg := tgbotapi.NewMessage(chatID, "กรุณาใช้เมนูด้านล่างครับ หรือกด 💬 เพื่อคุยกับ Vorathon")
		msg.ReplyMarkup = keyboards.Nav(h.stateManager.GetRole(chatID))
		_, err := h.api.Send(msg)
		return err
	}

	reply, err := h.deps.ChatSvc.Send(ctx, chatID, message.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrChatBusy) {
			msg := tgbotapi.NewMessage(chatID, "กำลังคิดอยู่ครับ รอสักครู่นะครับ...")
			_, err := h.api.Send(msg)
			return err
		}
		return err
	}

	msg := tgbotapi.NewMessage(chatID, "🤖 "+reply.Text)
	if _, err := h.api.Send(msg); err != nil {
		return err
	}

	if h.stateManager.AutoSpeak(chatID) {
		h.deps.SpeechSvc.Speak(reply.Text)
	}
	return nil
}

func (h *TextHandler) handleContactName(chatID int64, text string) error {
	h.stateManager.SetTempData(chatID, "contact_name", text)
	h.stateManager.SetState(chatID, state.WaitingForContactRelation)
	msg := tgbotapi.NewMessage(chatID, "พิมพ์ความสัมพันธ์ (เช่น ลูก, หลาน) หรือพิมพ์ - เพื่อข้าม")
	_, err := h.api.Send(msg)
	return err
}

func (h *TextHandler) handleContactRelation(chatID int64, text string) error {
	if text == "-" {
		text = ""
	}
	h.stateManager.SetTempData(chatID, "contact_relation", text)
	h.stateManager.SetState(chatID, state.WaitingForContactPhone)
	msg := tgbotapi.NewMessage(chatID, "พิมพ์เบอร์โทรศัพท์")
	_, err := h.api.Send(msg)
	return err
}

func (h *TextHandler) handleContactPhone(chatID int64, text string) error {
	name, _ := h.stateManager.GetTempData(chatID, "contact_name")
	relation, _ := h.stateManager.GetTempData(chatID, "contact_relation")

	h.stateManager.ClearState(chatID)
	h.stateManager.ClearTempData(chatID)

	contact, err := h.deps.ContactSvc.Add(name, relation, text)
	if err != nil {
		// Missing required fields: the submission is dropped without
		// field-level messages, the menu just comes back.
		logger.Warn("Contact submission rejected", "chat_id", chatID, "error", err)
		return menus.SendSettings(h.api, chatID, h.deps.Notifier.Subscribed(chatID))
	}

	msg := tgbotapi.NewMessage(chatID, "✅ เพิ่ม "+contact.Name+" ("+contact.PhoneNumber+") เรียบร้อยแล้วครับ")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return menus.SendSettings(h.api, chatID, h.deps.Notifier.Subscribed(chatID))
}

func (h *TextHandler) handleProfileField(chatID int64, key, value, nextState, prompt string) error {
	h.stateManager.SetTempData(chatID, key, value)
	h.stateManager.SetState(chatID, nextState)
	msg := tgbotapi.NewMessage(chatID, prompt)
	_, err := h.api.Send(msg)
	return err
}

func (h *TextHandler) handleProfileCondition(chatID int64, text string) error {
	h.stateManager.SetTempData(chatID, "profile_condition", text)
	h.stateManager.SetState(chatID, state.WaitingForProfileBloodType)
	msg := tgbotapi.NewMessage(chatID, "เลือกกรุ๊ปเลือด:")
	msg.ReplyMarkup = keyboards.BloodType()
	_, err := h.api.Send(msg)
	return err
}

func (h *TextHandler) handleProfileAddress(chatID int64, text string) error {
	name, _ := h.stateManager.GetTempData(chatID, "profile_name")
	surname, _ := h.stateManager.GetTempData(chatID, "profile_surname")
	condition, _ := h.stateManager.GetTempData(chatID, "profile_condition")
	bloodType, _ := h.stateManager.GetTempData(chatID, "profile_blood_type")

	h.stateManager.ClearState(chatID)
	h.stateManager.ClearTempData(chatID)

	current := h.deps.ProfileSvc.Get()
	err := h.deps.ProfileSvc.Update(domain.UserData{
		Name:      name,
		Surname:   surname,
		Condition: condition,
		BloodType: domain.BloodType(bloodType),
		Address:   text,
		PhotoURL:  current.PhotoURL,
	})
	if err != nil {
		logger.Warn("Profile submission rejected", "chat_id", chatID, "error", err)
		return menus.SendSettings(h.api, chatID, h.deps.Notifier.Subscribed(chatID))
	}

	msg := tgbotapi.NewMessage(chatID, "✅ บันทึกข้อมูลส่วนตัวเรียบร้อยแล้ว")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return menus.SendSettings(h.api, chatID, h.deps.Notifier.Subscribed(chatID))
}
