package services

import (
	"context"

	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
)

const speechLang = "th-TH"

// speechRate is kept below normal speed for elderly listeners.
const speechRate = 0.9

// SpeechService bridges platform speech capture and synthesis. Both
// sides are injected so the rest of the app can be tested without a
// real platform; an unsupported capability degrades to a no-op.
type SpeechService struct {
	recognizer  domain.Recognizer
	synthesizer domain.Synthesizer
}

func NewSpeechService(recognizer domain.Recognizer, synthesizer domain.Synthesizer) *SpeechService {
	return &SpeechService{
		recognizer:  recognizer,
		synthesizer: synthesizer,
	}
}

func (s *SpeechService) CanListen() bool {
	return s.recognizer != nil && s.recognizer.Supported()
}

func (s *SpeechService) CanSpeak() bool {
	return s.synthesizer != nil && s.synthesizer.Supported()
}

// Transcribe turns a captured voice clip into its final transcript.
func (s *SpeechService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if !s.CanListen() {
		return "", apperrors.ErrNotSupported
	}
	return s.recognizer.Transcribe(ctx, audio, mimeType)
}

// Speak reads text aloud. Fire-and-forget; unsupported synthesis is a
// silent no-op.
func (s *SpeechService) Speak(text string) {
	if !s.CanSpeak() {
		return
	}
	s.synthesizer.Speak(text, speechLang, speechRate)
}

// NoopSynthesizer is the shipped synthesizer: the host platform has no
// text-to-speech, so auto-speak silently does nothing.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Supported() bool                       { return false }
func (NoopSynthesizer) Speak(text, lang string, rate float64) {}

// NoopRecognizer reports speech capture as unavailable.
type NoopRecognizer struct{}

func (NoopRecognizer) Supported() bool { return false }

func (NoopRecognizer) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return "", apperrors.ErrNotSupported
}
