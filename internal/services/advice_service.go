package services

import (
	"strings"

	"github.com/vorathons/memory-mate/internal/domain"
)

// adviceGroup maps condition keywords to a fixed set of three tips.
// Groups are matched in declaration order and matching is non-exclusive.
type adviceGroup struct {
	keywords []string
	tips     []domain.AdviceTip
}

// Advice is rule-based on purpose: medical suggestions never go through
// the generative model.
var adviceGroups = []adviceGroup{
	{
		// Alzheimer's / memory
		keywords: []string{"อัลไซเมอร์", "ความจำ", "สมอง"},
		tips: []domain.AdviceTip{
			{Icon: "🧠", Text: "พยายามทำกิจวัตรเดิมๆ ทุกวัน ช่วยให้จำง่ายขึ้นครับ"},
			{Icon: "📸", Text: "ดูรูปเก่าๆ และเล่าเรื่องราวช่วยกระตุ้นความจำได้ดี"},
			{Icon: "🎶", Text: "การฟังเพลงที่ชอบ ช่วยให้อารมณ์ดีและผ่อนคลาย"},
		},
	},
	{
		// Hypertension / heart
		keywords: []string{"ความดัน", "หัวใจ"},
		tips: []domain.AdviceTip{
			{Icon: "🧂", Text: "ลดเค็ม ลดเกลือ ในอาหาร ช่วยคุมความดันได้"},
			{Icon: "🥗", Text: "ทานผักผลไม้เพิ่มขึ้น และดื่มน้ำให้เพียงพอ"},
			{Icon: "😌", Text: "ระวังอย่าเครียด พักผ่อนให้เพียงพอนะครับ"},
		},
	},
	{
		// Diabetes
		keywords: []string{"เบาหวาน", "น้ำตาล"},
		tips: []domain.AdviceTip{
			{Icon: "🍬", Text: "เลี่ยงของหวานและผลไม้รสหวานจัด"},
			{Icon: "🦶", Text: "หมั่นดูแลเท้า อย่าให้เกิดแผล และใส่รองเท้าที่นุ่มสบาย"},
			{Icon: "🍚", Text: "ควบคุมปริมาณข้าวและแป้งในแต่ละมื้อ"},
		},
	},
	{
		// Bone / joint
		keywords: []string{"กระดูก", "ข้อ", "ปวด"},
		tips: []domain.AdviceTip{
			{Icon: "🚶", Text: "เดินออกกำลังกายเบาๆ แต่อย่าหักโหมเกินไป"},
			{Icon: "☀️", Text: "รับแสงแดดอ่อนๆ ตอนเช้า ช่วยเสริมวิตามินดี"},
			{Icon: "🥛", Text: "ดื่มนมหรือทานปลาตัวเล็กเสริมแคลเซียม"},
		},
	},
}

// generalTips are the fallback when no keyword group matches.
var generalTips = []domain.AdviceTip{
	{Icon: "💧", Text: "จิบน้ำบ่อยๆ ตลอดวัน เพื่อให้ร่างกายสดชื่น"},
	{Icon: "😴", Text: "นอนหลับพักผ่อนให้เพียงพอ อย่างน้อย 7-8 ชั่วโมง"},
	{Icon: "😊", Text: "ทำจิตใจให้แจ่มใส ยิ้มแย้มเข้าไว้นะครับ"},
}

// ResolveAdvice returns health tips for a free-text condition. Substring
// matching is case-insensitive; advice from every matching group is
// concatenated in group order. Callers display the first three entries.
func ResolveAdvice(condition string) []domain.AdviceTip {
	lower := strings.ToLower(condition)

	var tips []domain.AdviceTip
	for _, group := range adviceGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				tips = append(tips, group.tips...)
				break
			}
		}
	}

	if len(tips) == 0 {
		tips = append(tips, generalTips...)
	}
	return tips
}
