package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/domain"
)

// Login creates the role selector shown at /start
func Login() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👴 ผู้สูงอายุ", "role_patient"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👨‍⚕️ ผู้ดูแล", "role_caregiver"),
		),
	)
}

// Nav creates the bottom navigation for a role. Settings is caregiver
// only; the patient gets the read-mostly profile view instead.
func Nav(role domain.Role) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 หน้าหลัก", "view_home"),
			tgbotapi.NewInlineKeyboardButtonData("📸 ความทรงจำ", "view_memories"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 คุยกับ Vorathon", "view_chat"),
			tgbotapi.NewInlineKeyboardButtonData("🆘 ฉุกเฉิน", "view_emergency"),
		),
	}

	if role == domain.RoleCaregiver {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ ตั้งค่าระบบ", "view_settings"),
		))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 ข้อมูลของฉัน", "view_profile"),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// RoutineList creates one toggle button per task
func RoutineList(tasks []domain.RoutineTask) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks)+1)
	for _, task := range tasks {
		check := "⬜"
		if task.Completed {
			check = "✅"
		}
		label := check + " " + task.Icon + " " + task.Time + " " + task.Title
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "toggle_task:"+task.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 รีเฟรช", "view_home"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Emergency creates one call button per contact
func Emergency(contacts []domain.Contact) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(contacts)+1)
	for _, c := range contacts {
		label := "📞 " + c.Name + " (" + c.Relation + ")"
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "call_contact:"+c.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ หน้าหลัก", "view_home"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Settings creates the caregiver settings menu
func Settings(notifyOn bool) tgbotapi.InlineKeyboardMarkup {
	notifyLabel := "🔔 เปิดการแจ้งเตือน"
	notifyData := "notify_on"
	if notifyOn {
		notifyLabel = "🔕 ปิดการแจ้งเตือน"
		notifyData = "notify_off"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(notifyLabel, notifyData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ แก้ไขข้อมูลส่วนตัว", "edit_profile"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ เพิ่มเบอร์ติดต่อ", "add_contact"),
			tgbotapi.NewInlineKeyboardButtonData("🗑️ ลบเบอร์ติดต่อ", "manage_contacts"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ หน้าหลัก", "view_home"),
		),
	)
}

// ContactDelete creates one delete button per contact
func ContactDelete(contacts []domain.Contact) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(contacts)+1)
	for _, c := range contacts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ "+c.Name+" - "+c.PhoneNumber, "delete_contact:"+c.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ กลับ", "view_settings"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BloodType creates the blood group picker of the profile form
func BloodType() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("A", "blood_type:A"),
			tgbotapi.NewInlineKeyboardButtonData("B", "blood_type:B"),
			tgbotapi.NewInlineKeyboardButtonData("O", "blood_type:O"),
			tgbotapi.NewInlineKeyboardButtonData("AB", "blood_type:AB"),
		),
	)
}

// Chat creates the chat screen controls
func Chat(autoSpeak, canSpeak bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	if canSpeak {
		label := "🔊 อ่านเสียง"
		data := "autospeak_off"
		if !autoSpeak {
			label = "🔇 ปิดเสียง"
			data = "autospeak_on"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ หน้าหลัก", "view_home"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
