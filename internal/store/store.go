// Package store holds all application state in memory. Nothing is
// persisted: the seed data is loaded at construction and every mutation
// is lost when the process exits.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
)

// RoutineStore holds the fixed daily routine. Tasks are never added or
// removed at runtime; only the completion flag flips.
type RoutineStore struct {
	mu    sync.RWMutex
	tasks []domain.RoutineTask
}

func NewRoutineStore(seed []domain.RoutineTask) *RoutineStore {
	tasks := make([]domain.RoutineTask, len(seed))
	copy(tasks, seed)
	return &RoutineStore{tasks: tasks}
}

// List returns a snapshot of the routine in seed order.
func (s *RoutineStore) List() []domain.RoutineTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RoutineTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Toggle flips the completion flag of the task with the given id and
// returns the updated task.
func (s *RoutineStore) Toggle(id string) (domain.RoutineTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i], nil
		}
	}
	return domain.RoutineTask{}, apperrors.ErrTaskNotFound
}

// ContactStore holds the emergency contacts. Append and delete only;
// the relative order of surviving entries never changes.
type ContactStore struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

func NewContactStore(seed []domain.Contact) *ContactStore {
	contacts := make([]domain.Contact, len(seed))
	copy(contacts, seed)
	return &ContactStore{contacts: contacts}
}

func (s *ContactStore) List() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *ContactStore) Get(id string) (domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Contact{}, apperrors.ErrContactNotFound
}

// Add appends a contact, assigning it a fresh unique identifier.
func (s *ContactStore) Add(contact domain.Contact) domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = uuid.NewString()
	s.contacts = append(s.contacts, contact)
	return contact
}

// Delete removes exactly one contact by id.
func (s *ContactStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.contacts {
		if c.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrContactNotFound
}

// ProfileStore holds the singleton patient profile.
type ProfileStore struct {
	mu      sync.RWMutex
	profile domain.UserData
}

func NewProfileStore(seed domain.UserData) *ProfileStore {
	return &ProfileStore{profile: seed}
}

func (s *ProfileStore) Get() domain.UserData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Replace swaps the profile wholesale.
func (s *ProfileStore) Replace(profile domain.UserData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

// ChatStore is the append-only conversation log.
type ChatStore struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
}

func NewChatStore(seed []domain.ChatMessage) *ChatStore {
	messages := make([]domain.ChatMessage, len(seed))
	copy(messages, seed)
	return &ChatStore{messages: messages}
}

// Append adds a message to the log, assigning id and timestamp, and
// returns the stored message.
func (s *ChatStore) Append(sender domain.Sender, text string) domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// History returns a snapshot of the full log in append order.
func (s *ChatStore) History() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// MemoryStore holds the read-only photo album.
type MemoryStore struct {
	photos []domain.MemoryPhoto
}

func NewMemoryStore(seed []domain.MemoryPhoto) *MemoryStore {
	photos := make([]domain.MemoryPhoto, len(seed))
	copy(photos, seed)
	return &MemoryStore{photos: photos}
}

func (s *MemoryStore) List() []domain.MemoryPhoto {
	out := make([]domain.MemoryPhoto, len(s.photos))
	copy(out, s.photos)
	return out
}
