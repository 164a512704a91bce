package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func entityValues(found []entities.ExtractedEntity, t entities.EntityType) []string {
	values := make([]string, 0)
	for _, e := range found {
		if e.Type == t {
			values = append(values, e.Value)
		}
	}
	return values
}

func TestExtractEntities(t *testing.T) {
	text := "Email alice@example.com or call 555-123-4567. The budget is $2,000.00. Docs at https://docs.example.com/page today. Sarah Johnson attended."

	found := extractEntities(text)

	if got := entityValues(found, entities.EntityTypeEmail); !reflect.DeepEqual(got, []string{"alice@example.com"}) {
		t.Errorf("emails = %v", got)
	}
	if got := entityValues(found, entities.EntityTypePhone); !reflect.DeepEqual(got, []string{"555-123-4567"}) {
		t.Errorf("phones = %v", got)
	}
	if got := entityValues(found, entities.EntityTypeURL); !reflect.DeepEqual(got, []string{"https://docs.example.com/page"}) {
		t.Errorf("urls = %v", got)
	}
	if got := entityValues(found, entities.EntityTypeCurrency); !reflect.DeepEqual(got, []string{"$2,000.00"}) {
		t.Errorf("currency = %v", got)
	}

	people := entityValues(found, entities.EntityTypePersonOrPlace)
	hasSarah := false
	for _, p := range people {
		if p == "Sarah Johnson" {
			hasSarah = true
		}
		if p == "The" {
			t.Errorf("stoplisted word leaked into entities: %v", people)
		}
	}
	if !hasSarah {
		t.Errorf("expected Sarah Johnson in %v", people)
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	text := "The deployment pipeline needs work. The deployment is slow. Our pipeline tooling blocks deployment."

	got := extractKeyPhrases(text)
	want := []string{"deployment", "pipeline"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key phrases = %v, want %v", got, want)
	}
}

func TestExtractKeyPhrasesSkipsSingletonsAndStopWords(t *testing.T) {
	got := extractKeyPhrases("the quick brown fox jumps over the lazy dog")
	if len(got) != 0 {
		t.Errorf("expected no key phrases, got %v", got)
	}
}

func TestExtractKeyPhrasesStopWordBoundaries(t *testing.T) {
	// Modal verbs are stop words even when frequent.
	got := extractKeyPhrases("We must deliver. We must win.")
	if len(got) != 0 {
		t.Errorf("modal verbs must be suppressed, got %v", got)
	}

	// Demonstratives are not stop words and surface when frequent.
	got = extractKeyPhrases("Look at this item and this item again")
	want := []string{"this", "item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key phrases = %v, want %v", got, want)
	}
}

func TestExtractActionItems(t *testing.T) {
	text := "We need to update the API guide. We must update the API guide. Task: refactor the cache layer."

	items := extractActionItems(text)
	if len(items) != 2 {
		t.Fatalf("expected 2 action items, got %d: %+v", len(items), items)
	}
	if items[0].Text != "update the API guide" {
		t.Errorf("items[0].Text = %q", items[0].Text)
	}
	if items[1].Text != "refactor the cache layer" {
		t.Errorf("items[1].Text = %q", items[1].Text)
	}
	for _, item := range items {
		if item.Priority != entities.ActionItemPriorityMedium {
			t.Errorf("priority = %q, want medium", item.Priority)
		}
		if item.Status != entities.ActionItemStatusOpen {
			t.Errorf("status = %q, want open", item.Status)
		}
	}
}

func TestExtractActionItemsDropsShortMatches(t *testing.T) {
	items := extractActionItems("We will go.")
	if len(items) != 0 {
		t.Errorf("expected no items for short matches, got %+v", items)
	}
}

func TestExtractDates(t *testing.T) {
	text := "Meet on Friday or 12/25/2024. January 5, 2026 is the deadline. Friday works."

	got := extractDates(text)
	want := []string{"12/25/2024", "January 5, 2026", "Friday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dates = %v, want %v", got, want)
	}
}

func TestExtractNumbersCountsDecimalHalves(t *testing.T) {
	got := extractNumbers("We sold 3 units at 3.14 each and 10 more.")

	want := []entities.ExtractedNumber{
		{Type: entities.NumberTypeInteger, Value: 3},
		{Type: entities.NumberTypeInteger, Value: 3},
		{Type: entities.NumberTypeInteger, Value: 14},
		{Type: entities.NumberTypeInteger, Value: 10},
		{Type: entities.NumberTypeDecimal, Value: 3.14},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("numbers = %+v, want %+v", got, want)
	}
}

func TestGenerateSummary(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"single sentence", "Hello world.", "Hello world"},
		{"three joined", "One one. Two two. Three three.", "One one Two two Three three"},
		{"first and last bridged", "One one. Two two. Three three. Four four. Five five.", "One one ... Five five"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := generateSummary(tc.text); got != tc.want {
				t.Errorf("generateSummary(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestGenerateSummaryCapsLongText(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := generateSummary(long + ".")
	want := strings.Repeat("a", 197) + "..."
	if got != want {
		t.Errorf("capped summary length = %d, want %d", len(got), len(want))
	}
}

func TestEstimateMeetingDuration(t *testing.T) {
	if got := estimateMeetingDuration("just a few words"); got != "~5 minutes" {
		t.Errorf("short text duration = %q", got)
	}
	if got := estimateMeetingDuration(strings.Repeat("word ", 1500)); got != "~10 minutes" {
		t.Errorf("1500 word duration = %q", got)
	}
	if got := estimateMeetingDuration(strings.Repeat("word ", 150*95)); got != "~1h 35m" {
		t.Errorf("long meeting duration = %q", got)
	}
}

func TestParseTextToStructuredCounts(t *testing.T) {
	out := ParseTextToStructured("Hello world. How are you?")
	if out.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", out.WordCount)
	}
	if out.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", out.SentenceCount)
	}
}

func TestParseTextToStructuredEmptyInput(t *testing.T) {
	out := ParseTextToStructured("")

	if out.Summary != "" {
		t.Errorf("Summary = %q, want empty", out.Summary)
	}
	if out.WordCount != 0 || out.SentenceCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", out.WordCount, out.SentenceCount)
	}
	if len(out.Entities) != 0 || len(out.KeyPhrases) != 0 || len(out.ActionItems) != 0 ||
		len(out.Dates) != 0 || len(out.Numbers) != 0 {
		t.Errorf("expected all lists empty: %+v", out)
	}
	if out.Entities == nil || out.KeyPhrases == nil || out.ActionItems == nil ||
		out.Dates == nil || out.Numbers == nil {
		t.Error("lists must be non-nil so they serialize as [] not null")
	}
}

func TestParseTextToStructuredDeterministic(t *testing.T) {
	text := "Sarah said we need to review the budget by Friday. The budget review covers $1,200.00. Contact sarah@example.com."

	first := ParseTextToStructured(text)
	second := ParseTextToStructured(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different outputs:\n%+v\n%+v", first, second)
	}
}
