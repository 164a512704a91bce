package parse

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// ParseTextRequest is the payload for POST /v1/parse
type ParseTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// ParseTextResponse carries the structured view of the input text
type ParseTextResponse struct {
	Success          bool                       `json:"success"`
	OriginalText     string                     `json:"original_text"`
	StructuredOutput *entities.StructuredOutput `json:"structured_output"`
}
