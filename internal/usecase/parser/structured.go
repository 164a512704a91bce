package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Typed entity patterns, scanned in fixed order so output ordering is stable.
// The capitalized-words heuristic runs last with its own stoplist and cap.
var entityPatterns = []struct {
	entityType entities.EntityType
	re         *regexp.Regexp
}{
	{entities.EntityTypeEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{entities.EntityTypePhone, regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
	{entities.EntityTypeURL, regexp.MustCompile(`https?://[^\s]+`)},
	{entities.EntityTypeCurrency, regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?`)},
}

var capitalizedWordsRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

// Sentence starters and pronouns that the capitalized-words heuristic
// would otherwise report as names.
var capitalizedStoplist = map[string]bool{
	"The": true, "This": true, "That": true, "There": true, "They": true,
}

var (
	actionItemPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:need to|must|should|will|going to)\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)(?:todo|task|action item)[:\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)([A-Z][^.!?]*(?:do|complete|finish|start|create|build|implement)[^.!?]*)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`),
		regexp.MustCompile(`(?i)\b(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`),
	}

	integerRe = regexp.MustCompile(`\b\d+\b`)
	decimalRe = regexp.MustCompile(`\b\d+\.\d+\b`)

	wordRe          = regexp.MustCompile(`\b\w+\b`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// Filler words excluded from key-phrase counting. Modal verbs are filler
// here; demonstratives like "this" are not and may surface as key phrases.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "should": true, "could": true, "may": true,
	"might": true, "must": true, "can": true,
}

// ParseTextToStructured runs every domain-agnostic extractor over the text
// and assembles the structured result. Pure and deterministic: equal input
// always yields equal output.
func ParseTextToStructured(text string) *entities.StructuredOutput {
	return &entities.StructuredOutput{
		Entities:      extractEntities(text),
		KeyPhrases:    extractKeyPhrases(text),
		ActionItems:   extractActionItems(text),
		Dates:         extractDates(text),
		Numbers:       extractNumbers(text),
		Summary:       generateSummary(text),
		WordCount:     len(strings.Fields(text)),
		SentenceCount: len(splitSentences(text)),
	}
}

// extractEntities finds emails, phone numbers, URLs, currency amounts, and
// probable proper nouns. Only the first 10 capitalized matches are
// considered, and single short words like "On" never survive the length
// filter.
func extractEntities(text string) []entities.ExtractedEntity {
	found := make([]entities.ExtractedEntity, 0)

	for _, p := range entityPatterns {
		for _, m := range p.re.FindAllString(text, -1) {
			found = append(found, entities.ExtractedEntity{Type: p.entityType, Value: m})
		}
	}

	capitalized := capitalizedWordsRe.FindAllString(text, -1)
	if len(capitalized) > 10 {
		capitalized = capitalized[:10]
	}
	for _, name := range capitalized {
		if len(name) > 2 && !capitalizedStoplist[name] {
			found = append(found, entities.ExtractedEntity{Type: entities.EntityTypePersonOrPlace, Value: name})
		}
	}

	return found
}

// extractKeyPhrases returns up to 10 frequent lowercase words, longest
// streak first. Words must be longer than 3 characters, appear more than
// once, and not be stop words. Ties keep first-occurrence order so the
// result is stable.
func extractKeyPhrases(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	order := make([]string, 0)
	for _, w := range words {
		if stopWords[w] || len(w) <= 3 {
			continue
		}
		if _, seen := freq[w]; !seen {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	phrases := make([]string, 0, 10)
	for _, w := range order {
		if len(phrases) == 10 {
			break
		}
		if freq[w] > 1 {
			phrases = append(phrases, w)
		}
	}
	return phrases
}

// extractActionItems finds generic task-like statements. Matches shorter
// than 11 characters are noise and dropped; exact duplicates keep their
// first occurrence; at most 5 items are returned.
func extractActionItems(text string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	seen := make(map[string]bool)

	for _, re := range actionItemPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			actionText := strings.TrimSpace(m[1])
			if len(actionText) <= 10 || seen[actionText] {
				continue
			}
			seen[actionText] = true
			items = append(items, entities.ActionItem{
				Text:     actionText,
				Priority: entities.ActionItemPriorityMedium,
				Status:   entities.ActionItemStatusOpen,
			})
		}
	}

	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

// extractDates finds date-like strings: numeric dates, month-name dates in
// both orders, and bare weekday names. Duplicates keep first occurrence.
func extractDates(text string) []string {
	dates := make([]string, 0)
	seen := make(map[string]bool)

	for _, re := range datePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			dates = append(dates, m)
		}
	}
	return dates
}

// extractNumbers finds integer and decimal literals, first 10 of each kind.
// The integer pattern also matches both halves of a decimal, so "3.14"
// yields integers 3 and 14 plus the decimal 3.14. Inherited behavior, kept
// so stored outputs stay comparable across versions.
func extractNumbers(text string) []entities.ExtractedNumber {
	numbers := make([]entities.ExtractedNumber, 0)

	ints := integerRe.FindAllString(text, -1)
	if len(ints) > 10 {
		ints = ints[:10]
	}
	for _, s := range ints {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, entities.ExtractedNumber{Type: entities.NumberTypeInteger, Value: v})
	}

	decimals := decimalRe.FindAllString(text, -1)
	if len(decimals) > 10 {
		decimals = decimals[:10]
	}
	for _, s := range decimals {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, entities.ExtractedNumber{Type: entities.NumberTypeDecimal, Value: v})
	}

	return numbers
}

// generateSummary builds a short summary from sentence boundaries:
// one sentence verbatim, up to three joined, otherwise first and last
// bridged with " ... ". Capped at 200 characters.
func generateSummary(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	var summary string
	switch {
	case len(sentences) == 1:
		summary = sentences[0]
	case len(sentences) <= 3:
		summary = strings.Join(sentences, " ")
	default:
		summary = sentences[0] + " ... " + sentences[len(sentences)-1]
	}

	if r := []rune(summary); len(r) > 200 {
		summary = string(r[:197]) + "..."
	}
	return summary
}

// estimateMeetingDuration estimates speaking time from word count at a
// 150 words-per-minute speaking rate, floored at 5 minutes.
func estimateMeetingDuration(text string) string {
	minutes := len(strings.Fields(text)) / 150
	if minutes < 5 {
		minutes = 5
	}
	if minutes < 60 {
		return fmt.Sprintf("~%d minutes", minutes)
	}
	return fmt.Sprintf("~%dh %dm", minutes/60, minutes%60)
}

// splitSentences splits on runs of sentence punctuation and drops empty
// segments, so trailing punctuation does not inflate the count.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
