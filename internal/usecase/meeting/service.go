package meeting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/parser"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// AnalysisStore persists processed analyses
type AnalysisStore interface {
	Save(ctx context.Context, analysis *entities.MeetingAnalysis) error
	GetByMeetingID(ctx context.Context, meetingID string) (*entities.MeetingAnalysis, error)
	ListRecent(ctx context.Context, limit int) ([]entities.MeetingAnalysis, error)
}

// ArtifactStore writes per-meeting artifacts to object storage
type ArtifactStore interface {
	StoreMeetingArtifacts(ctx context.Context, meetingID, transcript string, data *entities.MeetingData, requirements []entities.Requirement) (map[string]string, error)
}

// ProcessResult is the outcome of processing one transcript
type ProcessResult struct {
	MeetingID        string
	MeetingData      *entities.MeetingData
	Requirements     []entities.Requirement
	ExtractionMethod string
	BedrockUsed      bool
	BedrockError     string
}

// Service processes meeting transcripts into structured insights and
// backlog-ready requirements.
type Service struct {
	parser  *parser.Parser
	repo    AnalysisStore
	store   ArtifactStore
	bedrock config.BedrockConfig
	logger  *zap.Logger
}

// NewService creates a meeting processing service. repo and store may be
// nil; persistence and artifact upload are then skipped.
func NewService(p *parser.Parser, repo AnalysisStore, store ArtifactStore, bedrock config.BedrockConfig, logger *zap.Logger) *Service {
	return &Service{
		parser:  p,
		repo:    repo,
		store:   store,
		bedrock: bedrock,
		logger:  logger,
	}
}

// Process extracts meeting data from the transcript, maps it to
// requirements, persists the analysis, and uploads artifacts. useBedrock
// overrides the configured default when non-nil. Persistence and upload
// failures are logged but never fail the request; the extraction result
// still goes back to the caller.
func (s *Service) Process(ctx context.Context, meetingID, text string, useBedrock *bool) (*ProcessResult, error) {
	if meetingID == "" {
		meetingID = fmt.Sprintf("meeting-%s", uuid.New())
	}

	data, used, bedrockErr := s.parser.ParseMeetingText(ctx, text, s.resolveBedrock(useBedrock))
	requirements := parser.MapToRequirementsFormat(data)

	method := entities.ExtractionMethodRegex
	if used {
		method = entities.ExtractionMethodBedrock
	}

	if s.logger != nil {
		s.logger.Info("meeting processed",
			zap.String("meeting_id", meetingID),
			zap.String("extraction_method", method),
			zap.Int("action_items", len(data.ActionItems)),
			zap.Int("requirements", len(requirements)),
		)
	}

	if s.repo != nil {
		if err := s.persist(ctx, meetingID, text, data, requirements, method, bedrockErr); err != nil && s.logger != nil {
			s.logger.Warn("failed to persist meeting analysis",
				zap.String("meeting_id", meetingID),
				zap.Error(err),
			)
		}
	}

	if s.store != nil {
		if _, err := s.store.StoreMeetingArtifacts(ctx, meetingID, text, data, requirements); err != nil && s.logger != nil {
			s.logger.Warn("failed to store meeting artifacts",
				zap.String("meeting_id", meetingID),
				zap.Error(err),
			)
		}
	}

	return &ProcessResult{
		MeetingID:        meetingID,
		MeetingData:      data,
		Requirements:     requirements,
		ExtractionMethod: method,
		BedrockUsed:      used,
		BedrockError:     bedrockErr,
	}, nil
}

// GetAnalysis returns a previously processed analysis, or nil when none
// exists for the meeting.
func (s *Service) GetAnalysis(ctx context.Context, meetingID string) (*entities.MeetingAnalysis, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetByMeetingID(ctx, meetingID)
}

// ListAnalyses returns the most recently updated analyses
func (s *Service) ListAnalyses(ctx context.Context, limit int) ([]entities.MeetingAnalysis, error) {
	if s.repo == nil {
		return []entities.MeetingAnalysis{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

// resolveBedrock decides whether to try the alternate extractor: an
// explicit request wins, then the configured default, then auto-enable
// when an API key is present.
func (s *Service) resolveBedrock(requested *bool) bool {
	if requested != nil {
		return *requested
	}
	if s.bedrock.Enabled {
		return true
	}
	return s.bedrock.APIKey != ""
}

func (s *Service) persist(ctx context.Context, meetingID, text string, data *entities.MeetingData, requirements []entities.Requirement, method, bedrockErr string) error {
	analysis := entities.NewMeetingAnalysis(meetingID)
	analysis.Transcript = text
	analysis.Summary = data.Summary
	analysis.ExtractionMethod = method
	analysis.BedrockError = bedrockErr

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal meeting data: %w", err)
	}
	analysis.MeetingData = datatypes.JSON(dataJSON)

	reqJSON, err := json.Marshal(requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	analysis.Requirements = datatypes.JSON(reqJSON)

	return s.repo.Save(ctx, analysis)
}
