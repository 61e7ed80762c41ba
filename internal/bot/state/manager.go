package state

import (
	"sync"

	"github.com/vorathons/memory-mate/internal/domain"
)

// Conversation states. The settings forms walk through these one field
// at a time.
const (
	None = "none"

	WaitingForContactName     = "waiting_for_contact_name"
	WaitingForContactRelation = "waiting_for_contact_relation"
	WaitingForContactPhone    = "waiting_for_contact_phone"

	WaitingForProfileName      = "waiting_for_profile_name"
	WaitingForProfileSurname   = "waiting_for_profile_surname"
	WaitingForProfileCondition = "waiting_for_profile_condition"
	WaitingForProfileBloodType = "waiting_for_profile_blood_type"
	WaitingForProfileAddress   = "waiting_for_profile_address"
)

// Manager tracks per-chat session state: selected role, current view,
// pending form input and the auto-speak preference.
type Manager struct {
	mu        sync.RWMutex
	roles     map[int64]domain.Role
	views     map[int64]domain.View
	states    map[int64]string
	autoSpeak map[int64]bool
	tempData  map[int64]map[string]string
}

// NewManager creates a new session state manager
func NewManager() *Manager {
	return &Manager{
		roles:     make(map[int64]domain.Role),
		views:     make(map[int64]domain.View),
		states:    make(map[int64]string),
		autoSpeak: make(map[int64]bool),
		tempData:  make(map[int64]map[string]string),
	}
}

// SetRole records the role a chat picked on the login screen
func (m *Manager) SetRole(chatID int64, role domain.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[chatID] = role
}

// GetRole returns the chat's role, RoleNone before login
func (m *Manager) GetRole(chatID int64) domain.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.roles[chatID]
}

// SetView records the screen a chat is on
func (m *Manager) SetView(chatID int64, view domain.View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[chatID] = view
}

// GetView returns the chat's current screen, home by default
func (m *Manager) GetView(chatID int64) domain.View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	view, exists := m.views[chatID]
	if !exists {
		return domain.ViewHome
	}
	return view
}

// SetState sets the conversation state for a chat
func (m *Manager) SetState(chatID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = state
}

// GetState gets the conversation state for a chat
func (m *Manager) GetState(chatID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.states[chatID]
	if !exists {
		return None
	}
	return state
}

// ClearState resets the conversation state for a chat
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}

// SetAutoSpeak toggles reading companion replies aloud
func (m *Manager) SetAutoSpeak(chatID int64, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoSpeak[chatID] = on
}

// AutoSpeak reports whether replies should be read aloud
func (m *Manager) AutoSpeak(chatID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.autoSpeak[chatID]
}

// SetTempData stores one field of a partially filled form
func (m *Manager) SetTempData(chatID int64, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tempData[chatID] == nil {
		m.tempData[chatID] = make(map[string]string)
	}
	m.tempData[chatID][key] = value
}

// GetTempData fetches one field of a partially filled form
func (m *Manager) GetTempData(chatID int64, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, exists := m.tempData[chatID]
	if !exists {
		return "", false
	}
	value, exists := data[key]
	return value, exists
}

// ClearTempData drops all pending form fields for a chat
func (m *Manager) ClearTempData(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tempData, chatID)
}
