package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestParseModelJSONFencedBlock(t *testing.T) {
	content := "```json\n{\"summary\": \"launch moved to June\", \"participants\": [\"Ana\"]}\n```"

	shape, err := parseModelJSON(content)
	if err != nil {
		t.Fatalf("parseModelJSON: %v", err)
	}
	if shape.Summary != "launch moved to June" {
		t.Errorf("Summary = %q", shape.Summary)
	}
	if len(shape.Participants) != 1 || shape.Participants[0] != "Ana" {
		t.Errorf("Participants = %v", shape.Participants)
	}
}

func TestParseModelJSONSalvagesFromProse(t *testing.T) {
	content := `Here is the analysis you asked for: {"summary": "ok", "topics": ["billing"]} hope this helps`

	shape, err := parseModelJSON(content)
	if err != nil {
		t.Fatalf("parseModelJSON: %v", err)
	}
	if shape.Summary != "ok" {
		t.Errorf("Summary = %q", shape.Summary)
	}
	if len(shape.Topics) != 1 || shape.Topics[0] != "billing" {
		t.Errorf("Topics = %v", shape.Topics)
	}
}

func TestParseModelJSONRejectsGarbage(t *testing.T) {
	if _, err := parseModelJSON("no json here at all"); err == nil {
		t.Fatal("expected an error for non-JSON content")
	}
	if _, err := parseModelJSON("prefix {not: valid json} suffix"); err == nil {
		t.Fatal("expected an error for a malformed object")
	}
}

func TestMeetingDataShapeDefaults(t *testing.T) {
	shape := &meetingDataShape{
		Summary:     "short sync",
		ActionItems: []entities.ActionItem{{Text: "ship the fix"}},
	}

	data := shape.toMeetingData(strings.Repeat("word ", 1500))

	if data.Summary != "short sync" {
		t.Errorf("Summary = %q", data.Summary)
	}
	// Duration always comes from the transcript, not the model.
	if data.DurationEstimate != "~10 minutes" {
		t.Errorf("DurationEstimate = %q", data.DurationEstimate)
	}
	if data.ActionItems[0].Priority != entities.ActionItemPriorityMedium {
		t.Errorf("Priority = %q, want default medium", data.ActionItems[0].Priority)
	}
	if data.ActionItems[0].Status != entities.ActionItemStatusOpen {
		t.Errorf("Status = %q, want default open", data.ActionItems[0].Status)
	}
	if data.KeyDecisions == nil || data.Participants == nil || data.Topics == nil ||
		data.NextSteps == nil || data.Entities == nil || data.Dates == nil {
		t.Error("omitted fields must default to empty slices")
	}
	if len(data.Entities) != 0 || len(data.Dates) != 0 {
		t.Errorf("entities and dates must stay empty on this path: %+v", data)
	}
}

func TestBedrockExtractorNilClient(t *testing.T) {
	extractor := &BedrockExtractor{}
	if _, err := extractor.Extract(context.Background(), "some transcript"); err == nil {
		t.Fatal("expected an error when no client is configured")
	}
}
