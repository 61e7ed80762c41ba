package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vorathons/memory-mate/internal/domain"
)

func TestManagerDefaults(t *testing.T) {
	m := NewManager()

	assert.Equal(t, domain.RoleNone, m.GetRole(1))
	assert.Equal(t, domain.ViewHome, m.GetView(1))
	assert.Equal(t, None, m.GetState(1))
	assert.False(t, m.AutoSpeak(1))
}

func TestManagerRoleAndView(t *testing.T) {
	m := NewManager()

	m.SetRole(1, domain.RoleCaregiver)
	m.SetView(1, domain.ViewSettings)

	assert.Equal(t, domain.RoleCaregiver, m.GetRole(1))
	assert.Equal(t, domain.ViewSettings, m.GetView(1))

	// Sessions are per chat.
	assert.Equal(t, domain.RoleNone, m.GetRole(2))
}

func TestManagerStateLifecycle(t *testing.T) {
	m := NewManager()

	m.SetState(1, WaitingForContactName)
	assert.Equal(t, WaitingForContactName, m.GetState(1))

	m.ClearState(1)
	assert.Equal(t, None, m.GetState(1))
}

func TestManagerTempData(t *testing.T) {
	m := NewManager()

	_, ok := m.GetTempData(1, "contact_name")
	assert.False(t, ok)

	m.SetTempData(1, "contact_name", "หลานสาว")
	m.SetTempData(1, "contact_phone", "0861112222")

	name, ok := m.GetTempData(1, "contact_name")
	assert.True(t, ok)
	assert.Equal(t, "หลานสาว", name)

	m.ClearTempData(1)
	_, ok = m.GetTempData(1, "contact_name")
	assert.False(t, ok)
}

func TestManagerAutoSpeak(t *testing.T) {
	m := NewManager()

	m.SetAutoSpeak(1, true)
	assert.True(t, m.AutoSpeak(1))
	m.SetAutoSpeak(1, false)
	assert.False(t, m.AutoSpeak(1))
}
