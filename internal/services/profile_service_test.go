package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/store"
)

func TestProfileUpdateReplacesWholesale(t *testing.T) {
	svc := NewProfileService(store.NewProfileStore(store.SeedProfile()))

	next := domain.UserData{
		Name:      "คุณยาย",
		Surname:   "ใจดี",
		Condition: "เบาหวาน",
		BloodType: domain.BloodTypeA,
		Address:   "เชียงใหม่",
	}
	require.NoError(t, svc.Update(next))

	got := svc.Get()
	assert.Equal(t, next, got)
	// The old photo is gone too: the replacement is wholesale.
	assert.Empty(t, got.PhotoURL)
}

func TestProfileUpdateRequiresName(t *testing.T) {
	svc := NewProfileService(store.NewProfileStore(store.SeedProfile()))
	before := svc.Get()

	err := svc.Update(domain.UserData{Name: "  ", BloodType: domain.BloodTypeO})
	assert.Error(t, err)
	assert.Equal(t, before, svc.Get())
}

func TestProfileUpdateRejectsUnknownBloodType(t *testing.T) {
	svc := NewProfileService(store.NewProfileStore(store.SeedProfile()))

	err := svc.Update(domain.UserData{Name: "คุณตา", BloodType: "C"})
	assert.Error(t, err)
}

func TestValidBloodType(t *testing.T) {
	assert.True(t, domain.ValidBloodType(domain.BloodTypeA))
	assert.True(t, domain.ValidBloodType(domain.BloodTypeAB))
	assert.False(t, domain.ValidBloodType("c"))
	assert.False(t, domain.ValidBloodType(""))
}
