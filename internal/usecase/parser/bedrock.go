package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
)

const bedrockPrompt = `Analyze the following meeting transcript and extract structured information in JSON format.

Transcript:
%s

Please extract and return a JSON object with the following structure:
{
  "summary": "A concise summary of the meeting (2-3 sentences)",
  "action_items": [
    {
      "text": "Description of the action item",
      "assignee": "Person responsible (if mentioned, else null)",
      "due_date": "Due date or deadline (if mentioned, else null)",
      "priority": "high|medium|low"
    }
  ],
  "key_decisions": ["Decision 1", "Decision 2"],
  "participants": ["Name1", "Name2"],
  "topics": ["Topic1", "Topic2"],
  "next_steps": ["Step1", "Step2"]
}

Guidelines:
- Extract ALL action items mentioned, even if implicit
- For assignees, look for patterns like "John will...", "Sarah needs to...", "assigned to X"
- For due dates, extract any time references (dates, "by Friday", "next week", etc.)
- Set priority based on urgency keywords (urgent, ASAP, critical = high; soon, important = medium; else = low)
- List all participants mentioned in the conversation
- Extract main discussion topics
- Identify key decisions made

Return ONLY valid JSON, no additional text.`

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// meetingDataShape mirrors the JSON the model is asked to return. It is
// coerced into MeetingData at the boundary so shape drift in model output
// never reaches the mapper.
type meetingDataShape struct {
	Summary      string                `json:"summary"`
	ActionItems  []entities.ActionItem `json:"action_items"`
	KeyDecisions []string              `json:"key_decisions"`
	Participants []string              `json:"participants"`
	Topics       []string              `json:"topics"`
	NextSteps    []string              `json:"next_steps"`
}

// BedrockExtractor implements MeetingExtractor on top of the Bedrock
// runtime client.
type BedrockExtractor struct {
	client  *ai.BedrockClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewBedrockExtractor creates a BedrockExtractor. Every extraction is
// bounded by the given timeout.
func NewBedrockExtractor(client *ai.BedrockClient, timeout time.Duration, logger *zap.Logger) *BedrockExtractor {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &BedrockExtractor{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Extract sends the transcript to the model and coerces its JSON answer
// into meeting data. Any transport or parse failure is returned as an
// error for the caller to fall back on.
func (b *BedrockExtractor) Extract(ctx context.Context, text string) (*entities.MeetingData, error) {
	if b.client == nil {
		return nil, fmt.Errorf("bedrock client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	content, err := b.client.InvokeModel(ctx, fmt.Sprintf(bedrockPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("bedrock invocation failed: %w", err)
	}

	shape, err := parseModelJSON(content)
	if err != nil {
		if b.logger != nil {
			b.logger.Warn("bedrock returned unparseable content",
				zap.Int("content_length", len(content)),
			)
		}
		return nil, err
	}

	return shape.toMeetingData(text), nil
}

// parseModelJSON unmarshals model output, first stripping markdown fences,
// then salvaging the outermost JSON object when the model wrapped it in
// prose despite instructions.
func parseModelJSON(content string) (*meetingDataShape, error) {
	content = extractJSON(content)

	var shape meetingDataShape
	if err := json.Unmarshal([]byte(content), &shape); err != nil {
		salvaged := jsonObjectRe.FindString(content)
		if salvaged == "" {
			return nil, fmt.Errorf("could not parse JSON from bedrock response: %w", err)
		}
		if err2 := json.Unmarshal([]byte(salvaged), &shape); err2 != nil {
			return nil, fmt.Errorf("could not parse JSON from bedrock response: %w", err2)
		}
	}
	return &shape, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// toMeetingData default-fills every field the model omitted. Duration is
// always computed locally from the transcript; entities and dates stay
// empty on this path.
func (s *meetingDataShape) toMeetingData(text string) *entities.MeetingData {
	data := entities.NewMeetingData()
	data.Summary = s.Summary
	data.DurationEstimate = estimateMeetingDuration(text)

	if s.ActionItems != nil {
		data.ActionItems = s.ActionItems
	}
	if s.KeyDecisions != nil {
		data.KeyDecisions = s.KeyDecisions
	}
	if s.Participants != nil {
		data.Participants = s.Participants
	}
	if s.Topics != nil {
		data.Topics = s.Topics
	}
	if s.NextSteps != nil {
		data.NextSteps = s.NextSteps
	}

	for i := range data.ActionItems {
		if data.ActionItems[i].Priority == "" {
			data.ActionItems[i].Priority = entities.ActionItemPriorityMedium
		}
		if data.ActionItems[i].Status == "" {
			data.ActionItems[i].Status = entities.ActionItemStatusOpen
		}
	}

	return data
}
