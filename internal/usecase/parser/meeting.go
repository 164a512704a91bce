package parser

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingExtractor extracts structured meeting data from a transcript.
// Implementations may fail for any reason; the Parser treats every failure
// as "unavailable" and falls back to the rule-based path.
type MeetingExtractor interface {
	Extract(ctx context.Context, text string) (*entities.MeetingData, error)
}

// Parser turns meeting transcripts into structured meeting data. The
// rule-based path is pure and deterministic; an optional alternate extractor
// can be tried first.
type Parser struct {
	alt    MeetingExtractor
	logger *zap.Logger
}

// NewParser creates a Parser. alt may be nil when no alternate extractor is
// configured.
func NewParser(alt MeetingExtractor, logger *zap.Logger) *Parser {
	return &Parser{
		alt:    alt,
		logger: logger,
	}
}

// ParseMeetingText extracts meeting data from the transcript. When
// useAlternate is true the alternate extractor is attempted first; on any
// failure the rule-based path runs instead and the failure is returned as a
// message only, never as an error. Returns the data, whether the alternate
// extractor produced it, and the alternate extractor's failure message.
func (p *Parser) ParseMeetingText(ctx context.Context, text string, useAlternate bool) (*entities.MeetingData, bool, string) {
	var altErr string

	if useAlternate {
		if p.alt == nil {
			altErr = "alternate extractor not configured"
			if p.logger != nil {
				p.logger.Warn("alternate extractor requested but not configured, using rule-based extraction")
			}
		} else {
			data, err := p.alt.Extract(ctx, text)
			if err == nil {
				return data, true, ""
			}
			altErr = err.Error()
			if p.logger != nil {
				p.logger.Warn("alternate extraction failed, falling back to rule-based extraction",
					zap.Error(err),
				)
			}
		}
	}

	return p.parseWithRules(text), false, altErr
}

// parseWithRules assembles meeting data from the regex extractors.
func (p *Parser) parseWithRules(text string) *entities.MeetingData {
	return &entities.MeetingData{
		Summary:          generateMeetingSummary(text),
		ActionItems:      extractMeetingActionItems(text),
		KeyDecisions:     extractDecisions(text),
		Participants:     extractParticipants(text),
		Topics:           extractTopics(text),
		NextSteps:        extractNextSteps(text),
		DurationEstimate: estimateMeetingDuration(text),
		Entities:         extractEntities(text),
		Dates:            extractDates(text),
	}
}

var summaryIndicators = []string{"summary", "conclusion", "main point", "key takeaway", "overall"}

var (
	decisionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)decided to\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)decision[:\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)agreed to\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)concluded that\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)will\s+([^.!?]+?)(?:going forward|from now on)`),
	}

	participantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:said|mentioned|noted|asked|suggested|proposed|agreed)`),
		regexp.MustCompile(`(?i)attendees?[:\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)participants?[:\s]+([^.!?]+)`),
	}

	topicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)topic[:\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)discussed\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)regarding\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)about\s+([^.!?]+?)(?:\.|,|and)`),
	}

	nextStepPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)next step[:\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)going forward[,\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)next[,\s]+([^.!?]+)`),
		regexp.MustCompile(`(?i)follow up[:\s]+([^.!?]+)`),
	}
)

// Pronouns and sentence starters that the name patterns misread as people.
var participantStoplist = map[string]bool{
	"The": true, "This": true, "That": true, "There": true, "They": true,
	"We": true, "I": true,
}

// generateMeetingSummary prefers sentences that announce a summary or
// conclusion; when the transcript has none it falls back to joining the
// first and last sentences.
func generateMeetingSummary(text string) string {
	sentences := splitSentences(text)

	summarySentences := make([]string, 0)
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, indicator := range summaryIndicators {
			if strings.Contains(lower, indicator) {
				summarySentences = append(summarySentences, sentence)
				break
			}
		}
	}

	if len(summarySentences) > 0 {
		if len(summarySentences) > 3 {
			summarySentences = summarySentences[:3]
		}
		return strings.Join(summarySentences, " ")
	}

	if len(sentences) <= 3 {
		return strings.Join(sentences, " ")
	}
	return sentences[0] + " ... " + sentences[len(sentences)-1]
}

// extractDecisions finds commitment statements. Matches must be longer than
// 10 characters; duplicates keep first occurrence; capped at 10.
func extractDecisions(text string) []string {
	decisions := make([]string, 0)
	seen := make(map[string]bool)

	for _, re := range decisionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			decision := strings.TrimSpace(m[1])
			if len(decision) <= 10 || seen[decision] {
				continue
			}
			seen[decision] = true
			decisions = append(decisions, decision)
		}
	}

	if len(decisions) > 10 {
		decisions = decisions[:10]
	}
	return decisions
}

// extractParticipants finds speaker names ("Sarah mentioned") and explicit
// attendee lists. Matches longer than 3 words are unlikely to be names and
// are dropped. Capped at 15.
func extractParticipants(text string) []string {
	participants := make([]string, 0)
	seen := make(map[string]bool)

	for _, re := range participantPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			participant := strings.TrimSpace(m[1])
			if participantStoplist[participant] || seen[participant] {
				continue
			}
			if len(strings.Fields(participant)) > 3 {
				continue
			}
			seen[participant] = true
			participants = append(participants, participant)
		}
	}

	if len(participants) > 15 {
		participants = participants[:15]
	}
	return participants
}

// extractTopics unions pattern-matched discussion subjects (length 6-49)
// with the top 5 key phrases. Capped at 10.
func extractTopics(text string) []string {
	topics := make([]string, 0)
	seen := make(map[string]bool)

	for _, re := range topicPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			topic := strings.TrimSpace(m[1])
			if len(topic) <= 5 || len(topic) >= 50 || seen[topic] {
				continue
			}
			seen[topic] = true
			topics = append(topics, topic)
		}
	}

	phrases := extractKeyPhrases(text)
	if len(phrases) > 5 {
		phrases = phrases[:5]
	}
	for _, phrase := range phrases {
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		topics = append(topics, phrase)
	}

	if len(topics) > 10 {
		topics = topics[:10]
	}
	return topics
}

// extractNextSteps finds forward-looking statements. Matches must be longer
// than 10 characters; duplicates keep first occurrence; capped at 5.
func extractNextSteps(text string) []string {
	steps := make([]string, 0)
	seen := make(map[string]bool)

	for _, re := range nextStepPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			step := strings.TrimSpace(m[1])
			if len(step) <= 10 || seen[step] {
				continue
			}
			seen[step] = true
			steps = append(steps, step)
		}
	}

	if len(steps) > 5 {
		steps = steps[:5]
	}
	return steps
}
