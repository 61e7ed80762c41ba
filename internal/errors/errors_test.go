package errors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewHandler(logger), &buf
}

func TestHandlerRoutesValidationToWarn(t *testing.T) {
	h, buf := newCapturedHandler()

	h.Handle(context.Background(), ErrInvalidInput)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "Recoverable error")
	assert.Contains(t, out, "error_code=INVALID_INPUT")
}

func TestHandlerRoutesPermissionToWarn(t *testing.T) {
	h, buf := newCapturedHandler()

	h.Handle(context.Background(), ErrNotSupported)

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestHandlerRoutesExternalToError(t *testing.T) {
	h, buf := newCapturedHandler()

	h.Handle(context.Background(), NewExternalAPIError(errors.New("connection reset"), "Gemini"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error_type=external_api")
	assert.Contains(t, out, "api=Gemini")
}

func TestHandlerUnwrapsNestedAppError(t *testing.T) {
	h, buf := newCapturedHandler()

	wrapped := fmt.Errorf("handling update: %w", ErrChatBusy)
	h.Handle(context.Background(), wrapped)

	// Still routed by the inner taxonomy, not as an unknown error.
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error_code=CHAT_BUSY")
}

func TestHandlerLogsPlainErrors(t *testing.T) {
	h, buf := newCapturedHandler()

	h.Handle(context.Background(), errors.New("something broke"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "Unhandled error")
}

func TestHandlerIgnoresNil(t *testing.T) {
	h, buf := newCapturedHandler()

	h.Handle(context.Background(), nil)

	assert.Empty(t, buf.String())
}

func TestExternalAPIErrorKeepsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := NewExternalAPIError(cause, "OpenAI")

	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeExternal, err.Type)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "OpenAI API error")
}

func TestAppErrorIsMatchesTypeAndCode(t *testing.T) {
	other := New(ErrorTypeValidation, "CHAT_BUSY", "different message")
	assert.True(t, errors.Is(other, ErrChatBusy))

	mismatch := New(ErrorTypeValidation, "OTHER", "different message")
	assert.False(t, errors.Is(mismatch, ErrChatBusy))
}
