package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Extraction methods recorded on a persisted analysis
const (
	ExtractionMethodRegex   = "regex"
	ExtractionMethodBedrock = "bedrock"
)

// MeetingAnalysis persists one processed transcript together with its
// structured meeting data and mapped requirements. The JSON columns hold the
// exact payloads returned to API clients.
type MeetingAnalysis struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID        string         `json:"meeting_id" gorm:"type:varchar(128);not null;uniqueIndex"`
	Transcript       string         `json:"transcript" gorm:"type:text"`
	Summary          string         `json:"summary" gorm:"type:text"`
	MeetingData      datatypes.JSON `json:"meeting_data" gorm:"type:jsonb"`
	Requirements     datatypes.JSON `json:"requirements" gorm:"type:jsonb"`
	ExtractionMethod string         `json:"extraction_method" gorm:"type:varchar(32)"`
	BedrockError     string         `json:"bedrock_error,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for MeetingAnalysis
func (MeetingAnalysis) TableName() string {
	return "meeting_analyses"
}

// NewMeetingAnalysis creates a new analysis record for a meeting
func NewMeetingAnalysis(meetingID string) *MeetingAnalysis {
	return &MeetingAnalysis{
		ID:        uuid.New(),
		MeetingID: meetingID,
	}
}
