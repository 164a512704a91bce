package entities

// Number kinds found by the structured parser
const (
	NumberTypeInteger = "integer"
	NumberTypeDecimal = "decimal"
)

// ExtractedNumber is a numeric literal found in the text
type ExtractedNumber struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// StructuredOutput is the result of domain-agnostic text parsing
type StructuredOutput struct {
	Entities      []ExtractedEntity `json:"entities"`
	KeyPhrases    []string          `json:"key_phrases"`
	ActionItems   []ActionItem      `json:"action_items"`
	Dates         []string          `json:"dates"`
	Numbers       []ExtractedNumber `json:"numbers"`
	Summary       string            `json:"summary"`
	WordCount     int               `json:"word_count"`
	SentenceCount int               `json:"sentence_count"`
}
