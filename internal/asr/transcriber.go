package asr

import (
	"context"

	"KreyolCollector/internal/models"
)

// Transcriber produces a transcript for an uploaded clip. Real speech
// recognition runs in an external service; the ingest handler only calls
// this seam and trusts the result.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, lang models.Lang) (string, error)
}

// Stub returns fixed placeholder transcripts until the ASR integration lands.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (*Stub) Transcribe(_ context.Context, _ []byte, lang models.Lang) (string, error) {
	switch lang {
	case models.LangCreole:
		return "Bonjou mond (ASR stub)", nil
	default:
		return "Hello World (ASR stub)", nil
	}
}
