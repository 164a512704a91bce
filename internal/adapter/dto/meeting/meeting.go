package meeting

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// ProcessMeetingRequest is the payload for POST /v1/meetings/process.
// UseBedrock overrides the server default when present; MeetingID is
// generated when empty.
type ProcessMeetingRequest struct {
	Text       string `json:"text" validate:"required"`
	MeetingID  string `json:"meeting_id"`
	UseBedrock *bool  `json:"use_bedrock"`
}

// ProcessMeetingResponse carries the meeting summary and mapped requirements
type ProcessMeetingResponse struct {
	Success          bool                   `json:"success"`
	MeetingID        string                 `json:"meeting_id"`
	MeetingSummary   *entities.MeetingData  `json:"meeting_summary"`
	Requirements     []entities.Requirement `json:"requirements"`
	ExtractionMethod string                 `json:"extraction_method"`
	BedrockUsed      bool                   `json:"bedrock_used"`
	BedrockError     string                 `json:"bedrock_error,omitempty"`
}

// AnalysisResponse returns a previously persisted analysis
type AnalysisResponse struct {
	Success  bool                      `json:"success"`
	Analysis *entities.MeetingAnalysis `json:"analysis"`
}

// AnalysesResponse returns recently processed analyses
type AnalysesResponse struct {
	Success  bool                       `json:"success"`
	Analyses []entities.MeetingAnalysis `json:"analyses"`
}
