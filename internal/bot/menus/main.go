package menus

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/keyboards"
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/services"
)

var thaiWeekdays = [...]string{"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ", "วันพฤหัสบดี", "วันศุกร์", "วันเสาร์"}

var thaiMonths = [...]string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}

// thaiDate renders t as a Thai date line with the Buddhist-era year.
func thaiDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d", thaiWeekdays[t.Weekday()], t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

// SendLogin sends the role selector
func SendLogin(api *tgbotapi.BotAPI, chatID int64) error {
	text := `🧠 *ระบบดูแลผู้สูงอายุ Memory Mate*

สวัสดีครับ กรุณาเลือกบทบาทของคุณ:`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.Login()
	_, err := api.Send(msg)
	return err
}

// SendHome sends the home screen: greeting, date, health tips for the
// patient's condition and the routine list with toggle buttons.
func SendHome(api *tgbotapi.BotAPI, chatID int64, role domain.Role, profile domain.UserData, tasks []domain.RoutineTask, now time.Time) error {
	var b strings.Builder
	b.WriteString("🧠 *ระบบดูแลผู้สูงอายุ*\n")
	b.WriteString(thaiDate(now))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("🏥 *คำแนะนำสำหรับคุณ%s*\n", profile.Name))
	b.WriteString(fmt.Sprintf("อ้างอิงตามอาการ: %s\n", profile.Condition))
	tips := services.ResolveAdvice(profile.Condition)
	if len(tips) > 3 {
		tips = tips[:3]
	}
	for _, tip := range tips {
		b.WriteString(fmt.Sprintf("%s %s\n", tip.Icon, tip.Text))
	}

	b.WriteString("\n📋 *กิจวัตรประจำวัน* (แตะเพื่อติ๊กว่าทำแล้ว)")

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.RoutineList(tasks)
	if _, err := api.Send(msg); err != nil {
		return err
	}

	nav := tgbotapi.NewMessage(chatID, "เลือกเมนู:")
	nav.ReplyMarkup = keyboards.Nav(role)
	_, err := api.Send(nav)
	return err
}

// SendMemories sends the photo album, one photo per memory with its
// story, the people in it and the date label.
func SendMemories(api *tgbotapi.BotAPI, chatID int64, role domain.Role, photos []domain.MemoryPhoto) error {
	intro := tgbotapi.NewMessage(chatID, "📸 *อัลบั้มความทรงจำ*")
	intro.ParseMode = "Markdown"
	if _, err := api.Send(intro); err != nil {
		return err
	}

	for _, photo := range photos {
		caption := photo.Description
		if len(photo.People) > 0 {
			caption += "\n👥 " + strings.Join(photo.People, ", ")
		}
		if photo.Date != "" {
			caption += "\n📅 " + photo.Date
		}

		msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photo.ImageURL))
		msg.Caption = caption
		if _, err := api.Send(msg); err != nil {
			return err
		}
	}

	nav := tgbotapi.NewMessage(chatID, "เลือกเมนู:")
	nav.ReplyMarkup = keyboards.Nav(role)
	_, err := api.Send(nav)
	return err
}

// SendChatIntro sends the chat screen header before free text flows to
// the companion.
func SendChatIntro(api *tgbotapi.BotAPI, chatID int64, autoSpeak, canSpeak bool) error {
	text := `🤖 *Vorathon* — เพื่อนคุยของคุณตา

พิมพ์ข้อความหรือส่งข้อความเสียงมาคุยกันได้เลยครับ`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.Chat(autoSpeak, canSpeak)
	_, err := api.Send(msg)
	return err
}

// SendEmergency sends the patient info card and the contact list.
func SendEmergency(api *tgbotapi.BotAPI, chatID int64, profile domain.UserData, contacts []domain.Contact) error {
	text := fmt.Sprintf(`🆘 *ข้อมูลฉุกเฉิน*

👤 ชื่อ: %s %s
🏥 โรคประจำตัว: %s
🩸 กรุ๊ปเลือด: %s
🏠 ที่อยู่: %s

แตะชื่อเพื่อรับเบอร์โทร:`,
		profile.Name, profile.Surname, profile.Condition, profile.BloodType, profile.Address)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.Emergency(contacts)
	_, err := api.Send(msg)
	return err
}

// SendSettings sends the caregiver settings menu.
func SendSettings(api *tgbotapi.BotAPI, chatID int64, notifyOn bool) error {
	msg := tgbotapi.NewMessage(chatID, "⚙️ *ตั้งค่าระบบ (สำหรับผู้ดูแล)*")
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.Settings(notifyOn)
	_, err := api.Send(msg)
	return err
}

// SendProfile sends the read-mostly profile card.
func SendProfile(api *tgbotapi.BotAPI, chatID int64, role domain.Role, profile domain.UserData) error {
	text := fmt.Sprintf(`👤 *ข้อมูลของฉัน*

ชื่อ: %s %s
โรคประจำตัว: %s
กรุ๊ปเลือด: %s
ที่อยู่: %s`,
		profile.Name, profile.Surname, profile.Condition, profile.BloodType, profile.Address)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.Nav(role)
	_, err := api.Send(msg)
	return err
}
