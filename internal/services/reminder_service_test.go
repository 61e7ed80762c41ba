package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/store"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

type notifyCall struct {
	title string
	body  string
}

func (n *recordingNotifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{title: title, body: body})
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestReminder(tasks []domain.RoutineTask) (*ReminderService, *store.RoutineStore, *recordingNotifier) {
	routines := store.NewRoutineStore(tasks)
	notifier := &recordingNotifier{}
	svc := NewReminderService(routines, notifier, time.UTC)
	return svc, routines, notifier
}

func at(hour, min, sec int) time.Time {
	return time.Date(2024, 3, 15, hour, min, sec, 0, time.UTC)
}

func TestReminderFiresOncePerMinute(t *testing.T) {
	svc, _, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00"},
	})

	// Sixty ticks inside the same wall-clock minute.
	for sec := 0; sec < 60; sec++ {
		svc.checkOnce(at(8, 0, sec))
	}

	assert.Equal(t, 1, notifier.count())
}

func TestReminderUsesVoiceMessageOrDefaultBody(t *testing.T) {
	svc, _, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00", VoiceMessageText: "อย่าลืมกินยาเช้านะครับคุณตา"},
		{ID: "2", Title: "ทานข้าวกลางวัน", Time: "12:00"},
	})

	svc.checkOnce(at(8, 0, 0))
	svc.checkOnce(at(12, 0, 0))

	require.Equal(t, 2, notifier.count())
	assert.Equal(t, "ถึงเวลา: กินยาเช้า", notifier.calls[0].title)
	assert.Equal(t, "อย่าลืมกินยาเช้านะครับคุณตา", notifier.calls[0].body)
	assert.Equal(t, "ถึงเวลา: ทานข้าวกลางวัน", notifier.calls[1].title)
	assert.Equal(t, defaultReminderBody, notifier.calls[1].body)
}

func TestReminderSkipsCompletedTask(t *testing.T) {
	svc, routines, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00"},
	})

	_, err := routines.Toggle("1")
	require.NoError(t, err)

	for sec := 0; sec < 60; sec++ {
		svc.checkOnce(at(8, 0, sec))
	}

	assert.Zero(t, notifier.count())
}

func TestReminderFiresAgainNextDay(t *testing.T) {
	svc, _, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00"},
	})

	svc.checkOnce(at(8, 0, 30))
	// The minute marker moves on, so tomorrow's 08:00 fires again.
	svc.checkOnce(at(9, 0, 0))
	svc.checkOnce(time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, 2, notifier.count())
}

func TestReminderMarkerAdvancesWithoutMatches(t *testing.T) {
	svc, routines, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00", Completed: true},
	})

	// The first tick of a minute scans and advances the marker even
	// when nothing notifies; a task un-completed later in the same
	// minute misses its window.
	svc.checkOnce(at(8, 0, 1))
	_, err := routines.Toggle("1")
	require.NoError(t, err)
	svc.checkOnce(at(8, 0, 30))

	assert.Zero(t, notifier.count())
}

func TestReminderMissedMinuteIsSilentlySkipped(t *testing.T) {
	svc, _, notifier := newTestReminder([]domain.RoutineTask{
		{ID: "1", Title: "กินยาเช้า", Time: "08:00"},
	})

	// Process suspended across the 08:00 boundary: the next tick lands
	// at 08:01 and the window is gone.
	svc.checkOnce(at(7, 59, 59))
	svc.checkOnce(at(8, 1, 2))

	assert.Zero(t, notifier.count())
}

func TestReminderNotifiesEveryMatchingTask(t *testing.T) {
	var tasks []domain.RoutineTask
	for i := 0; i < 3; i++ {
		tasks = append(tasks, domain.RoutineTask{
			ID:    fmt.Sprintf("%d", i+1),
			Title: fmt.Sprintf("งานที่ %d", i+1),
			Time:  "16:00",
		})
	}
	svc, _, notifier := newTestReminder(tasks)

	svc.checkOnce(at(16, 0, 0))
	svc.checkOnce(at(16, 0, 1))

	// All three tasks share the minute; each fires exactly once.
	assert.Equal(t, 3, notifier.count())
}
