package services

import (
	"net/url"
	"strings"

	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/logger"
	"github.com/vorathons/memory-mate/internal/store"
)

const defaultRelation = "ญาติ"

// ContactService manages emergency contacts. Create and delete only;
// an edit is a delete plus recreate.
type ContactService struct {
	contacts *store.ContactStore
}

func NewContactService(contacts *store.ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) List() []domain.Contact {
	return s.contacts.List()
}

func (s *ContactService) Get(id string) (domain.Contact, error) {
	return s.contacts.Get(id)
}

// Add appends a contact with a generated id. Name and phone number are
// required; a submission missing either is rejected outright, nothing
// is appended. Relation falls back to a default label and the avatar is
// derived from the name.
func (s *ContactService) Add(name, relation, phoneNumber string) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" || phoneNumber == "" {
		return domain.Contact{}, apperrors.ErrInvalidInput
	}

	relation = strings.TrimSpace(relation)
	if relation == "" {
		relation = defaultRelation
	}

	contact := s.contacts.Add(domain.Contact{
		Name:        name,
		Relation:    relation,
		PhoneNumber: phoneNumber,
		ImageURL:    "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
	})

	logger.Info("Contact added", "contact_id", contact.ID, "name", contact.Name)
	return contact, nil
}

// Delete removes exactly one contact by id; the order of the remaining
// contacts is untouched.
func (s *ContactService) Delete(id string) error {
	if err := s.contacts.Delete(id); err != nil {
		return err
	}
	logger.Info("Contact deleted", "contact_id", id)
	return nil
}
