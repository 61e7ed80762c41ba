package interfaces

import (
	"context"

	"github.com/vorathons/memory-mate/internal/domain"
)

// RoutineServiceInterface defines the contract for routine operations
type RoutineServiceInterface interface {
	List() []domain.RoutineTask
	Toggle(id string) (domain.RoutineTask, error)
}

// ContactServiceInterface defines the contract for contact operations
type ContactServiceInterface interface {
	List() []domain.Contact
	Get(id string) (domain.Contact, error)
	Add(name, relation, phoneNumber string) (domain.Contact, error)
	Delete(id string) error
}

// ProfileServiceInterface defines the contract for profile operations
type ProfileServiceInterface interface {
	Get() domain.UserData
	Update(data domain.UserData) error
}

// ChatServiceInterface defines the contract for companion chat operations
type ChatServiceInterface interface {
	History() []domain.ChatMessage
	Busy(chatID int64) bool
	Send(ctx context.Context, chatID int64, text string) (domain.ChatMessage, error)
}

// MemoryServiceInterface defines the contract for the photo album
type MemoryServiceInterface interface {
	List() []domain.MemoryPhoto
}

// SpeechServiceInterface defines the contract for speech operations
type SpeechServiceInterface interface {
	CanListen() bool
	CanSpeak() bool
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
	Speak(text string)
}
