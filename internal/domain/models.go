package domain

import (
	"time"
)

// Role is the role a chat selected on the login screen. It gates the
// caregiver settings flow and nothing else.
type Role string

const (
	RoleNone      Role = ""
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

// View identifies one of the six screens of the app.
type View string

const (
	ViewHome      View = "home"
	ViewMemories  View = "memories"
	ViewChat      View = "chat"
	ViewEmergency View = "emergency"
	ViewSettings  View = "settings"
	ViewProfile   View = "profile"
)

// RoutineTask is one entry of the daily routine. The set is fixed at
// process start; only the Completed flag is ever mutated.
type RoutineTask struct {
	ID                string
	Title             string
	Time              string // "HH:MM"
	Completed         bool
	Icon              string
	FamilyPhotoURL    string
	VoiceMessageText  string
	RelationshipLabel string
}

// Contact is an emergency contact. Contacts are created and deleted by
// the caregiver; there is no update, edits are delete plus recreate.
type Contact struct {
	ID          string
	Name        string
	Relation    string
	PhoneNumber string
	ImageURL    string
}

type BloodType string

const (
	BloodTypeA  BloodType = "A"
	BloodTypeB  BloodType = "B"
	BloodTypeO  BloodType = "O"
	BloodTypeAB BloodType = "AB"
)

// ValidBloodType reports whether b is one of the four known groups.
func ValidBloodType(b BloodType) bool {
	switch b {
	case BloodTypeA, BloodTypeB, BloodTypeO, BloodTypeAB:
		return true
	}
	return false
}

// UserData is the patient profile. Singleton, replaced wholesale on save.
type UserData struct {
	Name      string
	Surname   string
	Condition string // free text, feeds the advice resolver
	BloodType BloodType
	Address   string
	PhotoURL  string
}

type Sender string

const (
	SenderUser      Sender = "user"
	SenderCompanion Sender = "companion"
)

// ChatMessage is one entry of the append-only conversation log.
type ChatMessage struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// MemoryPhoto is a seeded photo of the memory album. Read only.
type MemoryPhoto struct {
	ID          string
	ImageURL    string
	Description string
	People      []string
	Date        string
}

// AdviceTip is one (icon, text) health tip produced by the advice resolver.
type AdviceTip struct {
	Icon string
	Text string
}
