package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/store"
)

func newTestContacts(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(store.NewContactStore(store.SeedContacts()))
}

func TestContactAddAppendsWithFreshID(t *testing.T) {
	svc := newTestContacts(t)
	before := svc.List()

	contact, err := svc.Add("หลานสาว", "หลาน", "0861112222")
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)

	after := svc.List()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, contact.ID, after[len(after)-1].ID)

	// Fresh identifiers never collide with existing ones.
	seen := make(map[string]bool)
	for _, c := range after {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestContactAddRejectsMissingRequiredFields(t *testing.T) {
	svc := newTestContacts(t)
	before := svc.List()

	_, err := svc.Add("", "", "0861112222")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	_, err = svc.Add("หลานสาว", "", "  ")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	// Rejected submissions append nothing.
	assert.Equal(t, before, svc.List())
}

func TestContactAddDefaultsRelation(t *testing.T) {
	svc := newTestContacts(t)

	contact, err := svc.Add("เพื่อนบ้าน", "", "021234567")
	require.NoError(t, err)
	assert.Equal(t, defaultRelation, contact.Relation)
	assert.Contains(t, contact.ImageURL, "ui-avatars.com")
}

func TestContactDeleteRemovesExactlyOneKeepingOrder(t *testing.T) {
	svc := newTestContacts(t)
	a, err := svc.Add("ก", "ลูก", "0810000001")
	require.NoError(t, err)
	b, err := svc.Add("ข", "หลาน", "0810000002")
	require.NoError(t, err)
	c, err := svc.Add("ค", "เพื่อน", "0810000003")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(b.ID))

	ids := make([]string, 0)
	for _, contact := range svc.List() {
		ids = append(ids, contact.ID)
	}
	assert.NotContains(t, ids, b.ID)

	// Survivors keep their relative order.
	idxA, idxC := -1, -1
	for i, id := range ids {
		if id == a.ID {
			idxA = i
		}
		if id == c.ID {
			idxC = i
		}
	}
	require.NotEqual(t, -1, idxA)
	require.NotEqual(t, -1, idxC)
	assert.Less(t, idxA, idxC)
}

func TestContactDeleteUnknownID(t *testing.T) {
	svc := newTestContacts(t)
	err := svc.Delete("no-such-contact")
	assert.True(t, errors.Is(err, apperrors.ErrContactNotFound))
}
