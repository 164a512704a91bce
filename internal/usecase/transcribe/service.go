package transcribe

import (
	"context"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/usecase/parser"
)

// Transcription job statuses exposed to API clients
const (
	StatusCompleted  = "completed"
	StatusProcessing = "processing"
	StatusQueued     = "queued"
	StatusError      = "error"
)

// Result is the outcome of a transcription submission. Direct text input
// completes immediately; audio submissions return a job to poll.
type Result struct {
	TranscriptID string
	Status       string
	Text         string
	Structured   *entities.StructuredOutput
}

// StatusResult is the state of a transcription job
type StatusResult struct {
	ID          string
	Status      string
	Text        string
	Structured  *entities.StructuredOutput
	ErrorReason string
}

// Service submits audio for transcription and polls job status. Completed
// transcripts are cached so repeated polls skip the provider.
type Service struct {
	client   *aai.Client
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a transcription service. client may be nil when no
// provider key is configured; direct text input still works.
func NewService(client *aai.Client, store cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &Service{
		client:   client,
		cache:    store,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Transcribe handles direct text immediately and submits audio URLs to the
// provider. Exactly one of text and audioURL must be set.
func (s *Service) Transcribe(ctx context.Context, text, audioURL, languageCode string) (*Result, error) {
	if text != "" {
		return &Result{
			Status:     StatusCompleted,
			Text:       text,
			Structured: parser.ParseTextToStructured(text),
		}, nil
	}

	if audioURL == "" {
		return nil, errors.ErrMissingAudioSource()
	}
	if s.client == nil {
		return nil, errors.ErrTranscriptionFailed(fmt.Errorf("transcription provider not configured"))
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(languageCode)
	}

	transcript, err := s.client.Transcripts.SubmitFromURL(ctx, audioURL, params)
	if err != nil {
		return nil, errors.ErrTranscriptionFailed(err)
	}

	transcriptID := ""
	if transcript.ID != nil {
		transcriptID = *transcript.ID
	}

	if s.logger != nil {
		s.logger.Info("transcription job submitted",
			zap.String("transcript_id", transcriptID),
			zap.String("status", string(transcript.Status)),
		)
	}

	return &Result{
		TranscriptID: transcriptID,
		Status:       string(transcript.Status),
	}, nil
}

// GetStatus polls the provider for job state. Completed transcripts are
// cached; on a cache hit the structured output is recomputed locally, which
// is safe because parsing is deterministic.
func (s *Service) GetStatus(ctx context.Context, transcriptID string) (*StatusResult, error) {
	if transcriptID == "" {
		return nil, errors.ErrInvalidArgument("transcript id is required")
	}

	if s.cache != nil {
		text, ok, err := s.cache.Get(ctx, transcriptCacheKey(transcriptID))
		if err != nil && s.logger != nil {
			s.logger.Warn("transcript cache lookup failed",
				zap.String("transcript_id", transcriptID),
				zap.Error(err),
			)
		}
		if err == nil && ok {
			return s.completedResult(transcriptID, text), nil
		}
	}

	if s.client == nil {
		return nil, errors.ErrTranscriptionFailed(fmt.Errorf("transcription provider not configured"))
	}

	transcript, err := s.client.Transcripts.Get(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrTranscriptionFailed(err)
	}

	result := &StatusResult{
		ID:     transcriptID,
		Status: string(transcript.Status),
	}

	switch transcript.Status {
	case aai.TranscriptStatusCompleted:
		text := ""
		if transcript.Text != nil {
			text = *transcript.Text
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, transcriptCacheKey(transcriptID), text, s.cacheTTL); err != nil && s.logger != nil {
				s.logger.Warn("failed to cache transcript",
					zap.String("transcript_id", transcriptID),
					zap.Error(err),
				)
			}
		}
		result.Status = StatusCompleted
		result.Text = text
		result.Structured = parser.ParseTextToStructured(text)

	case aai.TranscriptStatusError:
		if transcript.Error != nil {
			result.ErrorReason = *transcript.Error
		}
	}

	return result, nil
}

func (s *Service) completedResult(transcriptID, text string) *StatusResult {
	return &StatusResult{
		ID:         transcriptID,
		Status:     StatusCompleted,
		Text:       text,
		Structured: parser.ParseTextToStructured(text),
	}
}

func transcriptCacheKey(transcriptID string) string {
	return "transcript:" + transcriptID
}
