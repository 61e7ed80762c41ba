package domain

import (
	"context"
)

// Notifier dispatches a reminder to the outside world. Dispatch is
// fire-and-forget: no delivery confirmation, no retry, and with no
// granted permission it must no-op silently.
type Notifier interface {
	Notify(title, body string)
}

// CompanionProvider is the hosted generative-language backend of the chat
// companion. One provider serves a process; errors are handled by the caller.
type CompanionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recognizer turns captured speech into a final transcript.
type Recognizer interface {
	Supported() bool
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer reads text aloud. Fire-and-forget; starting a new utterance
// cancels any in-progress one.
type Synthesizer interface {
	Supported() bool
	Speak(text, lang string, rate float64)
}
