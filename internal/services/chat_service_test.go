package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/store"
)

func newTestChat(provider domain.CompanionProvider) *ChatService {
	chatLog := store.NewChatStore(store.SeedChat())
	return NewChatService(chatLog, NewCompanionService(provider))
}

func TestChatSendAppendsBothSides(t *testing.T) {
	svc := newTestChat(&mockProvider{})

	reply, err := svc.Send(context.Background(), 42, "สวัสดี")
	require.NoError(t, err)
	assert.Equal(t, domain.SenderCompanion, reply.Sender)
	assert.Equal(t, "สวัสดีครับ", reply.Text)

	history := svc.History()
	// Greeting seed + user message + reply, in append order.
	require.Len(t, history, 3)
	assert.Equal(t, domain.SenderUser, history[1].Sender)
	assert.Equal(t, "สวัสดี", history[1].Text)
	assert.Equal(t, domain.SenderCompanion, history[2].Sender)
}

func TestChatSendSnapshotsHistoryBeforeAppending(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestChat(provider)

	_, err := svc.Send(context.Background(), 42, "กินข้าวหรือยัง")
	require.NoError(t, err)

	// The new message must appear exactly once in the prompt, as the
	// trailing user line, not duplicated through the history.
	assert.Equal(t, 1, strings.Count(provider.lastPrompt, "กินข้าวหรือยัง"))
}

func TestChatSendDeliversApologyOnProviderFailure(t *testing.T) {
	provider := &mockProvider{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", fmt.Errorf("boom")
		},
	}
	svc := newTestChat(provider)

	reply, err := svc.Send(context.Background(), 42, "สวัสดี")
	require.NoError(t, err)
	assert.Equal(t, apologyText, reply.Text)

	// The apology is logged like any other companion turn.
	history := svc.History()
	assert.Equal(t, apologyText, history[len(history)-1].Text)
}

func TestChatSendRejectsConcurrentSendFromSameChat(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	provider := &mockProvider{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			close(started)
			<-release
			return "ครับ", nil
		},
	}
	svc := newTestChat(provider)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), 42, "ข้อความแรก")
		done <- err
	}()

	<-started
	assert.True(t, svc.Busy(42))

	_, err := svc.Send(context.Background(), 42, "ข้อความที่สอง")
	assert.True(t, errors.Is(err, apperrors.ErrChatBusy))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.Busy(42))
}

func TestChatSendAllowsDifferentChatsConcurrently(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	first := true
	provider := &mockProvider{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			if first {
				first = false
				close(started)
				<-release
			}
			return "ครับ", nil
		},
	}
	svc := newTestChat(provider)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), 1, "จากแชทแรก")
		done <- err
	}()

	<-started

	// A different chat is not blocked by chat 1's in-flight request.
	_, err := svc.Send(context.Background(), 2, "จากแชทที่สอง")
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
}

func TestChatHistoryTimestampsAreMonotonic(t *testing.T) {
	svc := newTestChat(&mockProvider{})

	_, err := svc.Send(context.Background(), 42, "หนึ่ง")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), 42, "สอง")
	require.NoError(t, err)

	history := svc.History()
	var prev time.Time
	for _, msg := range history {
		assert.False(t, msg.Timestamp.Before(prev))
		prev = msg.Timestamp
	}
}
