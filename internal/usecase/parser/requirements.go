package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MapToRequirementsFormat maps extracted meeting data into an ordered list
// of backlog-ready requirements. Action items map first, in order; then
// substantial decisions. Decisions of 20 characters or fewer are skipped
// without consuming an ID, so the sequence stays gapless.
func MapToRequirementsFormat(data *entities.MeetingData) []entities.Requirement {
	requirements := make([]entities.Requirement, 0)
	if data == nil {
		return requirements
	}

	for idx, action := range data.ActionItems {
		priority := action.Priority
		if priority == "" {
			priority = entities.ActionItemPriorityMedium
		}

		req := entities.Requirement{
			ID:                 fmt.Sprintf("REQ-%03d", idx+1),
			Title:              truncateWithEllipsis(action.Text, 100),
			Description:        action.Text,
			Type:               entities.RequirementTypeFunctional,
			Priority:           priority,
			Status:             entities.RequirementStatusDraft,
			Assignee:           action.Assignee,
			DueDate:            action.DueDate,
			AcceptanceCriteria: generateAcceptanceCriteria(action.Text),
			Source:             entities.RequirementSourceActionItem,
			RelatedDecisions:   make([]string, 0),
		}

		// Weak lexical link: a decision relates to the action when any of
		// its first 3 words appears inside the action text.
		actionLower := strings.ToLower(action.Text)
		for _, decision := range data.KeyDecisions {
			words := strings.Fields(strings.ToLower(decision))
			if len(words) > 3 {
				words = words[:3]
			}
			for _, word := range words {
				if strings.Contains(actionLower, word) {
					req.RelatedDecisions = append(req.RelatedDecisions, decision)
					break
				}
			}
		}

		requirements = append(requirements, req)
	}

	idx := len(requirements) + 1
	for _, decision := range data.KeyDecisions {
		if utf8.RuneCountInString(decision) <= 20 {
			continue
		}
		requirements = append(requirements, entities.Requirement{
			ID:                 fmt.Sprintf("REQ-%03d", idx),
			Title:              "Decision: " + firstRunes(decision, 80),
			Description:        decision,
			Type:               entities.RequirementTypeNonFunctional,
			Priority:           entities.ActionItemPriorityMedium,
			Status:             entities.RequirementStatusDraft,
			AcceptanceCriteria: []string{"Decision documented and communicated"},
			Source:             entities.RequirementSourceDecision,
			RelatedDecisions:   []string{decision},
		})
		idx++
	}

	return requirements
}

// generateAcceptanceCriteria derives criteria from verbs in the action text.
// The checks are independent, so several can fire for one item; when none
// fire, two generic criteria apply.
func generateAcceptanceCriteria(actionText string) []string {
	criteria := make([]string, 0, 2)
	lower := strings.ToLower(actionText)

	if strings.Contains(lower, "complete") {
		criteria = append(criteria, "Task is completed and verified")
	}
	if strings.Contains(lower, "review") {
		criteria = append(criteria, "Review is completed and feedback provided")
	}
	if strings.Contains(lower, "implement") || strings.Contains(lower, "build") {
		criteria = append(criteria, "Implementation is complete and tested")
	}
	if strings.Contains(lower, "create") {
		criteria = append(criteria, "Deliverable is created and approved")
	}

	if len(criteria) == 0 {
		criteria = append(criteria,
			"Action item is completed as specified",
			"Completion is verified and documented",
		)
	}
	return criteria
}

// truncateWithEllipsis keeps the first limit runes and marks the cut.
func truncateWithEllipsis(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

// firstRunes keeps the first limit runes without an ellipsis.
func firstRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
