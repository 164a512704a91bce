package entities

// Requirement types
const (
	RequirementTypeFunctional    = "functional"
	RequirementTypeNonFunctional = "non-functional"
)

// RequirementStatusDraft is the status of every freshly mapped requirement
const RequirementStatusDraft = "draft"

// Requirement sources
const (
	RequirementSourceActionItem = "meeting_action_item"
	RequirementSourceDecision   = "meeting_decision"
)

// Requirement is a backlog-ready record derived from meeting data.
// IDs are sequential ("REQ-001", "REQ-002", ...) across one mapping run.
type Requirement struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Type               string   `json:"type"`
	Priority           string   `json:"priority"`
	Status             string   `json:"status"`
	Assignee           *string  `json:"assignee"`
	DueDate            *string  `json:"due_date"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Source             string   `json:"source"`
	RelatedDecisions   []string `json:"related_decisions"`
}
