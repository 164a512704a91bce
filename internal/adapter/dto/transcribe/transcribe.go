package transcribe

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// TranscribeRequest is the payload for POST /v1/transcriptions. Either
// direct text or an audio URL must be provided.
type TranscribeRequest struct {
	Text         string `json:"text"`
	AudioURL     string `json:"audio_url"`
	LanguageCode string `json:"language_code"`
}

// TranscribeResponse acknowledges a submission. Direct text completes
// immediately and carries the structured output inline.
type TranscribeResponse struct {
	Success          bool                       `json:"success"`
	TranscriptID     string                     `json:"transcript_id,omitempty"`
	Status           string                     `json:"status"`
	TranscribedText  string                     `json:"transcribed_text,omitempty"`
	StructuredOutput *entities.StructuredOutput `json:"structured_output,omitempty"`
}

// StatusResponse is the state of a transcription job
type StatusResponse struct {
	Success          bool                       `json:"success"`
	TranscriptID     string                     `json:"transcript_id"`
	Status           string                     `json:"status"`
	TranscribedText  string                     `json:"transcribed_text,omitempty"`
	StructuredOutput *entities.StructuredOutput `json:"structured_output,omitempty"`
	Error            string                     `json:"error,omitempty"`
}
