package services

import (
	"context"
	"strings"

	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/logger"
)

const personaPrompt = `คุณคือ "Vorathon" ผู้ช่วย AI ที่เป็นมิตร ใจเย็น และเข้าอกเข้าใจ
คุณกำลังคุยกับผู้สูงอายุที่มีปัญหาเรื่องความจำ (อัลไซเมอร์ระยะเริ่มต้น)

คำแนะนำในการตอบ:
– ใช้ภาษาไทยสุภาพ เรียบง่าย และให้กำลังใจ
– หากจำไม่ได้ / พูดซ้ำ ให้ตอบอย่างใจเย็น
– ชวนคุยเรื่องที่คุ้นเคย เช่น อดีต / กิจวัตรง่าย ๆ
– หลีกเลี่ยงโต้แย้ง และเรียกตัวเองว่า "ผม" หรือ "Vorathon"`

const (
	apologyText    = "ขอโทษครับ ระบบขัดข้อง ลองใหม่อีกครั้งนะครับ"
	emptyReplyText = "ขอโทษครับ ผมไม่ได้ยิน — ช่วยพูดอีกครั้งได้ไหมครับ?"
)

// CompanionService turns a user message plus the prior conversation into
// a companion reply. Any provider failure degrades to a fixed apology;
// an error never reaches the user. No retry, no streaming.
type CompanionService struct {
	provider domain.CompanionProvider
}

func NewCompanionService(provider domain.CompanionProvider) *CompanionService {
	return &CompanionService{provider: provider}
}

// Reply generates the companion's answer to message given the prior
// history. The returned string is always presentable to the user.
func (s *CompanionService) Reply(ctx context.Context, message string, history []domain.ChatMessage) string {
	prompt := buildPrompt(message, history)

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Companion provider failed", "error", err)
		return apologyText
	}
	if strings.TrimSpace(text) == "" {
		return emptyReplyText
	}
	return strings.TrimSpace(text)
}

// buildPrompt folds persona, history and the new message into a single
// prompt string, each turn prefixed by its speaker.
func buildPrompt(message string, history []domain.ChatMessage) string {
	lines := []string{personaPrompt}
	for _, h := range history {
		if h.Sender == domain.SenderUser {
			lines = append(lines, "คุณ: "+h.Text)
		} else {
			lines = append(lines, "Vorathon: "+h.Text)
		}
	}
	lines = append(lines, "คุณ: "+message, "Vorathon:")
	return strings.Join(lines, "\n")
}
