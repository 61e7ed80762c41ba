package handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vorathons/memory-mate/internal/bot/state"
	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/notification"
)

// fakeTelegramClient satisfies tgbotapi.HTTPClient, answering every API
// call with an empty ok result and recording what was sent.
type fakeTelegramClient struct {
	mu       sync.Mutex
	requests []sentRequest
}

type sentRequest struct {
	endpoint string
	params   url.Values
}

func (c *fakeTelegramClient) Do(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	params, _ := url.ParseQuery(string(body))

	c.mu.Lock()
	c.requests = append(c.requests, sentRequest{endpoint: req.URL.Path, params: params})
	c.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"ok":true,"result":{}}`)),
	}, nil
}

func (c *fakeTelegramClient) sentTexts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	texts := make([]string, 0, len(c.requests))
	for _, r := range c.requests {
		if text := r.params.Get("text"); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func (c *fakeTelegramClient) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func newTestAPI() (*tgbotapi.BotAPI, *fakeTelegramClient) {
	client := &fakeTelegramClient{}
	api := &tgbotapi.BotAPI{Token: "test-token", Client: client}
	api.SetAPIEndpoint(tgbotapi.APIEndpoint)
	return api, client
}

type stubRoutineService struct {
	tasks []domain.RoutineTask
}

func (s *stubRoutineService) List() []domain.RoutineTask {
	return s.tasks
}

func (s *stubRoutineService) Toggle(id string) (domain.RoutineTask, error) {
	return domain.RoutineTask{}, apperrors.ErrTaskNotFound
}

type stubProfileService struct {
	data domain.UserData
}

func (s *stubProfileService) Get() domain.UserData {
	return s.data
}

func (s *stubProfileService) Update(domain.UserData) error {
	return nil
}

func newTestCallbackHandler() (*CallbackHandler, *state.Manager, *fakeTelegramClient) {
	api, client := newTestAPI()
	deps := Dependencies{
		RoutineSvc: &stubRoutineService{},
		ProfileSvc: &stubProfileService{data: domain.UserData{Name: "คุณตา", Condition: "ความดันสูง"}},
		Notifier:   notification.NewTelegramNotifier(api),
	}
	manager := state.NewManager()
	return NewCallbackHandler(api, deps, manager), manager, client
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb",
		Data:    data,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}},
	}
}

func TestCallbackSettingsBlockedForPatient(t *testing.T) {
	h, manager, client := newTestCallbackHandler()
	manager.SetRole(42, domain.RolePatient)

	require.NoError(t, h.Handle(context.Background(), callback("view_settings")))

	// The view does not move; the chat just gets a refusal.
	assert.Equal(t, domain.ViewHome, manager.GetView(42))
	assert.Contains(t, client.sentTexts(), "เมนูนี้สำหรับผู้ดูแลเท่านั้นครับ")
}

func TestCallbackSettingsOpensForCaregiver(t *testing.T) {
	h, manager, _ := newTestCallbackHandler()
	manager.SetRole(42, domain.RoleCaregiver)

	require.NoError(t, h.Handle(context.Background(), callback("view_settings")))

	assert.Equal(t, domain.ViewSettings, manager.GetView(42))
}

func TestCallbackCaregiverActionsInertForPatient(t *testing.T) {
	for _, data := range []string{"edit_profile", "add_contact", "manage_contacts"} {
		h, manager, client := newTestCallbackHandler()
		manager.SetRole(42, domain.RolePatient)

		require.NoError(t, h.Handle(context.Background(), callback(data)))

		assert.Equal(t, state.None, manager.GetState(42), "action %s", data)
		for _, text := range client.sentTexts() {
			assert.NotContains(t, text, "พิมพ์ชื่อ", "action %s", data)
		}
	}
}

func TestCallbackEditProfileStartsFormForCaregiver(t *testing.T) {
	h, manager, client := newTestCallbackHandler()
	manager.SetRole(42, domain.RoleCaregiver)

	require.NoError(t, h.Handle(context.Background(), callback("edit_profile")))

	assert.Equal(t, state.WaitingForProfileName, manager.GetState(42))
	assert.Contains(t, client.sentTexts(), "พิมพ์ชื่อ (ปัจจุบัน: คุณตา)")
}

func TestCallbackWithoutMessageIsIgnored(t *testing.T) {
	h, _, client := newTestCallbackHandler()

	err := h.Handle(context.Background(), &tgbotapi.CallbackQuery{ID: "cb", Data: "view_home"})
	require.NoError(t, err)

	// Only the callback answer goes out, no screen render.
	assert.Equal(t, 1, client.requestCount())
}
