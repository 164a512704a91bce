package entities

// EntityType classifies a value found in transcript text
type EntityType string

const (
	EntityTypeEmail         EntityType = "EMAIL"
	EntityTypePhone         EntityType = "PHONE"
	EntityTypeURL           EntityType = "URL"
	EntityTypeCurrency      EntityType = "CURRENCY"
	EntityTypePersonOrPlace EntityType = "PERSON_OR_PLACE"
)

// ExtractedEntity is a single typed value found in the text
type ExtractedEntity struct {
	Type  EntityType `json:"type"`
	Value string     `json:"value"`
}

// ActionItem priority levels
const (
	ActionItemPriorityLow    = "low"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
)

// ActionItemStatusOpen is the initial status of every extracted item
const ActionItemStatusOpen = "open"

// ActionItem is a task-like statement extracted from a transcript.
// Assignee and DueDate are nil when the text gives no usable signal.
type ActionItem struct {
	Text     string  `json:"text"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
	Status   string  `json:"status"`
}

// MeetingData is the structured view of one meeting transcript
type MeetingData struct {
	Summary          string            `json:"summary"`
	ActionItems      []ActionItem      `json:"action_items"`
	KeyDecisions     []string          `json:"key_decisions"`
	Participants     []string          `json:"participants"`
	Topics           []string          `json:"topics"`
	NextSteps        []string          `json:"next_steps"`
	DurationEstimate string            `json:"duration_estimate"`
	Entities         []ExtractedEntity `json:"entities"`
	Dates            []string          `json:"dates"`
}

// NewMeetingData creates a MeetingData with every list initialized,
// so JSON output always carries arrays instead of nulls
func NewMeetingData() *MeetingData {
	return &MeetingData{
		ActionItems:  make([]ActionItem, 0),
		KeyDecisions: make([]string, 0),
		Participants: make([]string, 0),
		Topics:       make([]string, 0),
		NextSteps:    make([]string, 0),
		Entities:     make([]ExtractedEntity, 0),
		Dates:        make([]string, 0),
	}
}
