package transcribe

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

func TestTranscribeDirectText(t *testing.T) {
	svc := NewService(nil, cache.NewMemoryStore(), time.Hour, nil)

	result, err := svc.Transcribe(context.Background(), "Sarah said we need to review the budget.", "", "")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if result.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", result.Status)
	}
	if result.Structured == nil {
		t.Fatal("expected structured output for direct text")
	}
	if result.Structured.WordCount != 8 {
		t.Errorf("WordCount = %d", result.Structured.WordCount)
	}
	if result.TranscriptID != "" {
		t.Errorf("direct text must not create a job, got id %q", result.TranscriptID)
	}
}

func TestTranscribeMissingSource(t *testing.T) {
	svc := NewService(nil, nil, 0, nil)

	_, err := svc.Transcribe(context.Background(), "", "", "")
	if err == nil {
		t.Fatal("expected an error when neither text nor audio URL is given")
	}
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_MISSING_AUDIO_SOURCE {
		t.Errorf("err = %v, want missing audio source", err)
	}
}

func TestTranscribeNoProviderConfigured(t *testing.T) {
	svc := NewService(nil, nil, 0, nil)

	_, err := svc.Transcribe(context.Background(), "", "https://example.com/audio.mp3", "")
	if err == nil {
		t.Fatal("expected an error without a provider client")
	}
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_TRANSCRIPTION_FAILED {
		t.Errorf("err = %v, want transcription failed", err)
	}
}

func TestGetStatusRequiresID(t *testing.T) {
	svc := NewService(nil, nil, 0, nil)

	if _, err := svc.GetStatus(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty transcript id")
	}
}

func TestGetStatusCacheHitSkipsProvider(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	if err := store.Set(ctx, "transcript:abc", "cached transcript text here", time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A nil client would fail any provider call, so a result proves the
	// cache answered.
	svc := NewService(nil, store, time.Hour, nil)

	result, err := svc.GetStatus(ctx, "abc")
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if result.Status != StatusCompleted {
		t.Errorf("Status = %q", result.Status)
	}
	if result.Text != "cached transcript text here" {
		t.Errorf("Text = %q", result.Text)
	}
	if result.Structured == nil || result.Structured.WordCount != 4 {
		t.Errorf("Structured = %+v", result.Structured)
	}
}

func TestGetStatusCacheMissWithoutProvider(t *testing.T) {
	svc := NewService(nil, cache.NewMemoryStore(), time.Hour, nil)

	if _, err := svc.GetStatus(context.Background(), "missing"); err == nil {
		t.Fatal("expected an error on cache miss without a provider client")
	}
}
