package meeting

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/parser"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

type fakeRepo struct {
	saved  *entities.MeetingAnalysis
	stored *entities.MeetingAnalysis
	err    error
}

func (f *fakeRepo) Save(_ context.Context, analysis *entities.MeetingAnalysis) error {
	f.saved = analysis
	return f.err
}

func (f *fakeRepo) GetByMeetingID(_ context.Context, _ string) (*entities.MeetingAnalysis, error) {
	return f.stored, f.err
}

func (f *fakeRepo) ListRecent(_ context.Context, _ int) ([]entities.MeetingAnalysis, error) {
	if f.stored == nil {
		return nil, f.err
	}
	return []entities.MeetingAnalysis{*f.stored}, f.err
}

type fakeArtifacts struct {
	meetingID string
	err       error
}

func (f *fakeArtifacts) StoreMeetingArtifacts(_ context.Context, meetingID, _ string, _ *entities.MeetingData, _ []entities.Requirement) (map[string]string, error) {
	f.meetingID = meetingID
	return map[string]string{"transcript": "transcriptions/" + meetingID + "/transcription.txt"}, f.err
}

type failingExtractor struct{}

func (failingExtractor) Extract(_ context.Context, _ string) (*entities.MeetingData, error) {
	return nil, fmt.Errorf("model timeout")
}

const transcript = "John will finish the report by Friday. The team decided to launch next month."

func TestProcessRuleBased(t *testing.T) {
	repo := &fakeRepo{}
	artifacts := &fakeArtifacts{}
	svc := NewService(parser.NewParser(nil, nil), repo, artifacts, config.BedrockConfig{}, nil)

	result, err := svc.Process(context.Background(), "meeting-42", transcript, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.MeetingID != "meeting-42" {
		t.Errorf("MeetingID = %q", result.MeetingID)
	}
	if result.ExtractionMethod != entities.ExtractionMethodRegex {
		t.Errorf("ExtractionMethod = %q", result.ExtractionMethod)
	}
	if result.BedrockUsed {
		t.Error("BedrockUsed = true without an extractor")
	}
	if len(result.Requirements) == 0 {
		t.Error("expected requirements")
	}

	if repo.saved == nil {
		t.Fatal("analysis was not persisted")
	}
	if repo.saved.MeetingID != "meeting-42" {
		t.Errorf("persisted MeetingID = %q", repo.saved.MeetingID)
	}
	if repo.saved.Transcript != transcript {
		t.Errorf("persisted Transcript = %q", repo.saved.Transcript)
	}
	if len(repo.saved.MeetingData) == 0 || len(repo.saved.Requirements) == 0 {
		t.Error("persisted JSON columns are empty")
	}
	if artifacts.meetingID != "meeting-42" {
		t.Errorf("artifacts stored for %q", artifacts.meetingID)
	}
}

func TestProcessGeneratesMeetingID(t *testing.T) {
	svc := NewService(parser.NewParser(nil, nil), nil, nil, config.BedrockConfig{}, nil)

	result, err := svc.Process(context.Background(), "", transcript, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.HasPrefix(result.MeetingID, "meeting-") {
		t.Errorf("MeetingID = %q, want meeting- prefix", result.MeetingID)
	}
}

func TestProcessFallsBackWhenBedrockFails(t *testing.T) {
	svc := NewService(parser.NewParser(failingExtractor{}, nil), nil, nil, config.BedrockConfig{Enabled: true, APIKey: "key"}, nil)

	result, err := svc.Process(context.Background(), "m1", transcript, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.BedrockUsed {
		t.Error("BedrockUsed = true after extractor failure")
	}
	if result.ExtractionMethod != entities.ExtractionMethodRegex {
		t.Errorf("ExtractionMethod = %q", result.ExtractionMethod)
	}
	if result.BedrockError != "model timeout" {
		t.Errorf("BedrockError = %q", result.BedrockError)
	}
	if result.MeetingData == nil || len(result.MeetingData.ActionItems) == 0 {
		t.Error("fallback produced no meeting data")
	}
}

func TestProcessSurvivesPersistenceFailure(t *testing.T) {
	repo := &fakeRepo{err: fmt.Errorf("db down")}
	artifacts := &fakeArtifacts{err: fmt.Errorf("bucket missing")}
	svc := NewService(parser.NewParser(nil, nil), repo, artifacts, config.BedrockConfig{}, nil)

	result, err := svc.Process(context.Background(), "m2", transcript, nil)
	if err != nil {
		t.Fatalf("Process must not fail on persistence errors: %v", err)
	}
	if result.MeetingData == nil {
		t.Error("expected meeting data despite persistence failure")
	}
}

func TestResolveBedrock(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	cases := []struct {
		name      string
		cfg       config.BedrockConfig
		requested *bool
		want      bool
	}{
		{"explicit true wins", config.BedrockConfig{}, boolPtr(true), true},
		{"explicit false wins over enabled", config.BedrockConfig{Enabled: true, APIKey: "k"}, boolPtr(false), false},
		{"configured default", config.BedrockConfig{Enabled: true}, nil, true},
		{"auto-enable on api key", config.BedrockConfig{APIKey: "k"}, nil, true},
		{"off by default", config.BedrockConfig{}, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(parser.NewParser(nil, nil), nil, nil, tc.cfg, nil)
			if got := svc.resolveBedrock(tc.requested); got != tc.want {
				t.Errorf("resolveBedrock = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetAnalysis(t *testing.T) {
	stored := entities.NewMeetingAnalysis("m3")
	repo := &fakeRepo{stored: stored}
	svc := NewService(parser.NewParser(nil, nil), repo, nil, config.BedrockConfig{}, nil)

	got, err := svc.GetAnalysis(context.Background(), "m3")
	if err != nil {
		t.Fatalf("GetAnalysis: %v", err)
	}
	if got != stored {
		t.Errorf("GetAnalysis = %+v", got)
	}

	svc = NewService(parser.NewParser(nil, nil), nil, nil, config.BedrockConfig{}, nil)
	got, err = svc.GetAnalysis(context.Background(), "m3")
	if err != nil || got != nil {
		t.Errorf("nil repo: got %v, %v", got, err)
	}
}
