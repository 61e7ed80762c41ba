package handlers

import (
	"github.com/vorathons/memory-mate/internal/interfaces"
	"github.com/vorathons/memory-mate/internal/notification"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	RoutineSvc interfaces.RoutineServiceInterface
	ContactSvc interfaces.ContactServiceInterface
	ProfileSvc interfaces.ProfileServiceInterface
	ChatSvc    interfaces.ChatServiceInterface
	MemorySvc  interfaces.MemoryServiceInterface
	SpeechSvc  interfaces.SpeechServiceInterface
	Notifier   *notification.TelegramNotifier
}
