package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Meeting action-item patterns. Group layout drives field mapping: with
// three capture groups the first is a candidate assignee, the second the
// action text, the last the due date; with two groups the first is the
// action text and the last still maps to the due-date slot.
var meetingActionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:will|should|needs? to|must)\s+([^.!?]+?)(?:by|before|on|due)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)action item[:\s]+([^.!?]+?)(?:assignee|owner)[:\s]+([A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+)\s+to\s+([^.!?]+?)(?:by|before|on)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(?:need to|must|should|will|going to)\s+([^.!?]+?)(?:by|before|on)\s+([^.!?]+)`),
}

var (
	highPriorityWords   = []string{"urgent", "asap", "immediately", "critical", "important"}
	mediumPriorityWords = []string{"soon", "priority", "important"}
)

// extractMeetingActionItems extracts enriched action items with assignee and
// due-date inference, merges in the generic extractor's findings, then
// deduplicates by lowercase text and caps the list at 10.
func extractMeetingActionItems(text string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)

	for _, re := range meetingActionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			groups := m[1:]
			if len(groups) < 2 {
				continue
			}

			var assignee *string
			actionText := groups[0]
			if len(groups) >= 3 {
				if isCapitalized(groups[0]) {
					name := groups[0]
					assignee = &name
				}
				actionText = groups[1]
			}

			due := strings.TrimSpace(groups[len(groups)-1])
			dueDate := &due

			actionText = strings.TrimSpace(actionText)
			if len(actionText) <= 10 {
				continue
			}

			items = append(items, entities.ActionItem{
				Text:     actionText,
				Assignee: assignee,
				DueDate:  dueDate,
				Priority: detectPriority(actionText),
				Status:   entities.ActionItemStatusOpen,
			})
		}
	}

	// Merge in generic matches the enriched patterns missed.
	for _, simple := range extractActionItems(text) {
		exists := false
		for _, item := range items {
			if item.Text == simple.Text {
				exists = true
				break
			}
		}
		if !exists {
			items = append(items, entities.ActionItem{
				Text:     simple.Text,
				Priority: simple.Priority,
				Status:   entities.ActionItemStatusOpen,
			})
		}
	}

	seen := make(map[string]bool)
	unique := make([]entities.ActionItem, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}

	if len(unique) > 10 {
		unique = unique[:10]
	}
	return unique
}

// detectPriority infers a priority level from urgency keywords. The high
// set is checked first, so "important" always resolves to high.
func detectPriority(text string) string {
	lower := strings.ToLower(text)

	for _, word := range highPriorityWords {
		if strings.Contains(lower, word) {
			return entities.ActionItemPriorityHigh
		}
	}
	for _, word := range mediumPriorityWords {
		if strings.Contains(lower, word) {
			return entities.ActionItemPriorityMedium
		}
	}
	return entities.ActionItemPriorityLow
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
