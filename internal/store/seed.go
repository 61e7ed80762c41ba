package store

import (
	"time"

	"github.com/vorathons/memory-mate/internal/domain"
)

// Seed data for a fresh process. Everything below is the initial state
// of the app; identifiers are stable so keyboards can reference them.

func SeedRoutines() []domain.RoutineTask {
	return []domain.RoutineTask{
		{
			ID:               "1",
			Title:            "กินยาเช้า",
			Time:             "08:00",
			Icon:             "💊",
			VoiceMessageText: "อย่าลืมกินยาเช้านะครับคุณตา",
		},
		{
			ID:    "2",
			Title: "ทานข้าวกลางวัน",
			Time:  "12:00",
			Icon:  "🍲",
		},
		{
			ID:    "3",
			Title: "ออกกำลังกายเบาๆ",
			Time:  "16:00",
			Icon:  "💪",
		},
	}
}

func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{
			ID:          "c1",
			Name:        "ลูกชาย",
			Relation:    "ลูก",
			PhoneNumber: "0812345678",
			ImageURL:    "https://ui-avatars.com/api/?name=Son&background=random",
		},
		{
			ID:          "c2",
			Name:        "พยาบาล",
			Relation:    "พยาบาลดูแล",
			PhoneNumber: "0899999999",
			ImageURL:    "https://ui-avatars.com/api/?name=Nurse&background=random",
		},
	}
}

func SeedProfile() domain.UserData {
	return domain.UserData{
		Name:      "คุณตา",
		Surname:   "ใจดี",
		Condition: "ความดันสูง",
		BloodType: domain.BloodTypeO,
		Address:   "กรุงเทพ",
		PhotoURL:  "https://ui-avatars.com/api/?name=Grandpa&background=random&size=200",
	}
}

func SeedMemories() []domain.MemoryPhoto {
	return []domain.MemoryPhoto{
		{
			ID:          "1",
			ImageURL:    "https://picsum.photos/400/300?random=1",
			Description: "วันเกิดน้องเมย์ หลานสาวคนเล็ก ครบ 5 ขวบ",
			People:      []string{"น้องเมย์", "คุณตา"},
			Date:        "12 มกราคม 2567",
		},
		{
			ID:          "2",
			ImageURL:    "https://picsum.photos/400/300?random=2",
			Description: "ไปเที่ยวทะเลบางแสนกับลูกๆ สนุกมาก",
			People:      []string{"คุณพ่อ", "คุณแม่", "พี่ต้น"},
			Date:        "สงกรานต์ ปีที่แล้ว",
		},
	}
}

// SeedChat returns the companion's opening greeting.
func SeedChat() []domain.ChatMessage {
	return []domain.ChatMessage{
		{
			ID:        "1",
			Sender:    domain.SenderCompanion,
			Text:      "สวัสดีครับ ผม Vorathon วันนี้คุณตารู้สึกอย่างไรบ้าง เล่าให้ฟังได้นะครับ",
			Timestamp: time.Now(),
		},
	}
}
