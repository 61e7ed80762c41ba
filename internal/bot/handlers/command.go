package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/menus"
	"github.com/vorathons/memory-mate/internal/bot/state"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	stateManager *state.Manager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, stateManager *state.Manager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		h.stateManager.ClearState(chatID)
		h.stateManager.ClearTempData(chatID)
		return menus.SendLogin(h.api, chatID)
	case "help":
		msg := tgbotapi.NewMessage(chatID, `คำสั่งที่ใช้ได้:
/start - เลือกบทบาทและเริ่มใหม่
/help - แสดงข้อความนี้

🏠 หน้าหลัก: ดูคำแนะนำสุขภาพและกิจวัตรประจำวัน
📸 ความทรงจำ: ดูรูปภาพพร้อมเรื่องราว
💬 คุยกับ Vorathon: พิมพ์หรือส่งเสียงคุยกับเพื่อน AI
🆘 ฉุกเฉิน: เบอร์โทรติดต่อครอบครัวและพยาบาล
⚙️ ตั้งค่า (ผู้ดูแล): แก้ไขข้อมูลและเบอร์ติดต่อ`)
		_, err := h.api.Send(msg)
		return err
	default:
		msg := tgbotapi.NewMessage(chatID, "ไม่รู้จักคำสั่งนี้ครับ ลองใช้ /help ดูนะครับ")
		_, err := h.api.Send(msg)
		return err
	}
}
