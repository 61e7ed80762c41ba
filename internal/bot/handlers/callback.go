package handlers

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/keyboards"
	"github.com/vorathons/memory-mate/internal/bot/menus"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/logger"
)

// CallbackHandler handles inline keyboard button presses
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager *state.Manager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager *state.Manager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	// Inline-mode callbacks arrive without a message.
	if query.Message == nil {
		return nil
	}

	chatID := query.Message.Chat.ID
	data := query.Data

	// Prefixed callbacks carry an argument after the colon.
	if action, arg, found := strings.Cut(data, ":"); found {
		switch action {
		case "toggle_task":
			return h.handleToggleTask(chatID, arg)
		case "call_contact":
			return h.handleCallContact(chatID, arg)
		case "delete_contact":
			return h.handleDeleteContact(chatID, arg)
		case "blood_type":
			return h.handleBloodType(chatID, arg)
		}
		return h.handleUnknown(chatID)
	}

	switch data {
	case "role_patient":
		return h.handleRole(chatID, domain.RolePatient)
	case "role_caregiver":
		return h.handleRole(chatID, domain.RoleCaregiver)
	case "view_home":
		return h.showHome(chatID)
	case "view_memories":
		return h.showMemories(chatID)
	case "view_chat":
		return h.showChat(chatID)
	case "view_emergency":
		return h.showEmergency(chatID)
	case "view_settings":
		return h.showSettings(chatID)
	case "view_profile":
		return h.showProfile(chatID)
	case "notify_on":
		return h.handleNotify(chatID, true)
	case "notify_off":
		return h.handleNotify(chatID, false)
	case "autospeak_on":
		return h.handleAutoSpeak(chatID, true)
	case "autospeak_off":
		return h.handleAutoSpeak(chatID, false)
	case "edit_profile":
		return h.handleEditProfile(chatID)
	case "add_contact":
		return h.handleAddContact(chatID)
	case "manage_contacts":
		return h.handleManageContacts(chatID)
	default:
		return h.handleUnknown(chatID)
	}
}

func (h *CallbackHandler) handleRole(chatID int64, role domain.Role) error {
	h.stateManager.SetRole(chatID, role)
	h.stateManager.ClearState(chatID)
	h.stateManager.ClearTempData(chatID)
	logger.Info("Role selected", "chat_id", chatID, "role", role)
	return h.showHome(chatID)
}

func (h *CallbackHandler) showHome(chatID int64) error {
	h.stateManager.SetView(chatID, domain.ViewHome)
	h.stateManager.ClearState(chatID)
	role := h.stateManager.GetRole(chatID)
	return menus.SendHome(h.api, chatID, role, h.deps.ProfileSvc.Get(), h.deps.RoutineSvc.List(), time.Now())
}

func (h *CallbackHandler) showMemories(chatID int64) error {
	h.stateManager.SetView(chatID, domain.ViewMemories)
	role := h.stateManager.GetRole(chatID)
	return menus.SendMemories(h.api, chatID, role, h.deps.MemorySvc.List())
}

func (h *CallbackHandler) showChat(chatID int64) error {
	h.stateManager.SetView(chatID, domain.ViewChat)
	return menus.SendChatIntro(h.api, chatID, h.stateManager.AutoSpeak(chatID), h.deps.SpeechSvc.CanSpeak())
}

func (h *CallbackHandler) showEmergency(chatID int64) error {
	h.stateManager.SetView(chatID, domain.ViewEmergency)
	return menus.SendEmergency(h.api, chatID, h.deps.ProfileSvc.Get(), h.deps.ContactSvc.List())
}

func (h *CallbackHandler) showSettings(chatID int64) error {
	if h.stateManager.GetRole(chatID) != domain.RoleCaregiver {
		msg := tgbotapi.NewMessage(chatID, "เมนูนี้สำหรับผู้ดูแลเท่านั้นครับ")
		_, err := h.api.Send(msg)
		return err
	}
	h.stateManager.SetView(chatID, domain.ViewSettings)
	return menus.SendSettings(h.api, chatID, h.deps.Notifier.Subscribed(chatID))
}

func (h *CallbackHandler) showProfile(chatID int64) error {
	h.stateManager.SetView(chatID, domain.ViewProfile)
	role := h.stateManager.GetRole(chatID)
	return menus.SendProfile(h.api, chatID, role, h.deps.ProfileSvc.Get())
}

func (h *CallbackHandler) handleToggleTask(chatID int64, taskID string) error {
	task, err := h.deps.RoutineSvc.Toggle(taskID)
	if err != nil {
		logger.Warn("Toggle on unknown task", "task_id", taskID)
		return h.showHome(chatID)
	}

	text := "⬜ ยังไม่ได้ทำ: " + task.Title
	if task.Completed {
		text = "✅ ทำแล้ว: " + task.Title + " เก่งมากครับ"
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.RoutineList(h.deps.RoutineSvc.List())
	_, err = h.api.Send(msg)
	return err
}

// handleCallContact hands the number to the platform by sending a
// contact card; tapping it opens the phone's dialer.
func (h *CallbackHandler) handleCallContact(chatID int64, contactID string) error {
	contact, err := h.deps.ContactSvc.Get(contactID)
	if err != nil {
		return h.showEmergency(chatID)
	}

	card := tgbotapi.NewContact(chatID, contact.PhoneNumber, contact.Name)
	if _, err := h.api.Send(card); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, "📞 แตะที่เบอร์ด้านบนเพื่อโทรหา"+contact.Name+"ได้เลยครับ")
	_, err = h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleDeleteContact(chatID int64, contactID string) error {
	if err := h.deps.ContactSvc.Delete(contactID); err != nil {
		logger.Warn("Delete on unknown contact", "contact_id", contactID)
	}
	msg := tgbotapi.NewMessage(chatID, "ลบเบอร์ติดต่อเรียบร้อยแล้วครับ")
	msg.ReplyMarkup = keyboards.ContactDelete(h.deps.ContactSvc.List())
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleNotify(chatID int64, on bool) error {
	var text string
	if on {
		h.deps.Notifier.Subscribe(chatID)
		text = "🔔 เปิดการแจ้งเตือนเรียบร้อยแล้ว"
	} else {
		h.deps.Notifier.Unsubscribe(chatID)
		text = "🔕 ปิดการแจ้งเตือนแล้วครับ"
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.Settings(on)
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleAutoSpeak(chatID int64, on bool) error {
	h.stateManager.SetAutoSpeak(chatID, on)
	return h.showChat(chatID)
}

func (h *CallbackHandler) handleEditProfile(chatID int64) error {
	if h.stateManager.GetRole(chatID) != domain.RoleCaregiver {
		return h.showHome(chatID)
	}

	profile := h.deps.ProfileSvc.Get()
	h.stateManager.SetState(chatID, state.WaitingForProfileName)
	msg := tgbotapi.NewMessage(chatID, "พิมพ์ชื่อ (ปัจจุบัน: "+profile.Name+")")
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleBloodType(chatID int64, value string) error {
	if h.stateManager.GetState(chatID) != state.WaitingForProfileBloodType {
		return h.handleUnknown(chatID)
	}

	h.stateManager.SetTempData(chatID, "profile_blood_type", value)
	h.stateManager.SetState(chatID, state.WaitingForProfileAddress)
	msg := tgbotapi.NewMessage(chatID, "พิมพ์ที่อยู่")
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleAddContact(chatID int64) error {
	if h.stateManager.GetRole(chatID) != domain.RoleCaregiver {
		return h.showHome(chatID)
	}

	h.stateManager.SetState(chatID, state.WaitingForContactName)
	msg := tgbotapi.NewMessage(chatID, "พิมพ์ชื่อผู้ติดต่อ")
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleManageContacts(chatID int64) error {
	if h.stateManager.GetRole(chatID) != domain.RoleCaregiver {
		return h.showHome(chatID)
	}

	msg := tgbotapi.NewMessage(chatID, "แตะเบอร์ที่ต้องการลบ:")
	msg.ReplyMarkup = keyboards.ContactDelete(h.deps.ContactSvc.List())
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleUnknown(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "กรุณาใช้เมนูด้านล่างครับ")
	msg.ReplyMarkup = keyboards.Nav(h.stateManager.GetRole(chatID))
	_, err := h.api.Send(msg)
	return err
}
