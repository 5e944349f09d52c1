// ABOUTME: VariantSet model plus the validation and repair rules applied to
// ABOUTME: completion output before it is allowed to reach persistence
package domain

import (
	"strings"
)

// The three fixed stylistic variants of a scoop.
const (
	VariantFactual       = "factual"
	VariantDramatic      = "dramatic"
	VariantInstitutional = "institutional"
)

// VariantNames lists the variants in canonical order.
var VariantNames = []string{VariantFactual, VariantDramatic, VariantInstitutional}

// Allowed sentiment values.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentinels for unresolved metadata.
const (
	PlaceUnknown   = "Unknown"
	CountryUnknown = "XX"
	CountryGlobal  = "GLOBAL"

	// DefaultTopicTag is assigned when the generator produced no usable tags.
	DefaultTopicTag = "GENERAL"
)

// FactionKeys are the eight fixed audience factions scored per variant.
var FactionKeys = []string{
	"loyalists", "skeptics", "merchants", "scholars",
	"radicals", "clergy", "soldiers", "drifters",
}

// Reaction score bounds.
const (
	ReactionScoreMin = -10
	ReactionScoreMax = 10
)

// Word limits applied during repair.
const (
	remarkWordLimit = 15
	fillerWordLimit = 100
)

// VariantSet is the structured result of one variant-generation call after
// validation and repair. All three variant texts are present and pairwise
// distinct; all eight faction keys are present for all three variants.
type VariantSet struct {
	Variants         map[string]string
	TopicTags        []string
	Sentiment        string
	PlaceName        string
	CountryCode      string
	EditorialRemark  string
	AudienceReaction map[string]map[string]int
}

// Repair enforces the VariantSet contract in place, using the original
// article body as filler material where the generator came up short.
//
// Rules:
//   - a missing factual variant is filled with a truncated form of the source
//     body; missing or duplicated dramatic/institutional variants are
//     synthesized from distinct templated framings so the three texts are
//     always pairwise different
//   - topic tags default to {GENERAL}, sentiment to neutral
//   - the country code must be exactly 2 letters or the GLOBAL literal
//   - every reaction score is clamped into [-10, 10], missing values become 0
func (s *VariantSet) Repair(sourceBody string) {
	if s.Variants == nil {
		s.Variants = map[string]string{}
	}

	filler := TruncateWords(strings.TrimSpace(sourceBody), fillerWordLimit)
	if filler == "" {
		filler = "No further details were available at the time of writing."
	}

	if strings.TrimSpace(s.Variants[VariantFactual]) == "" {
		s.Variants[VariantFactual] = filler
	}

	if strings.TrimSpace(s.Variants[VariantDramatic]) == "" {
		s.Variants[VariantDramatic] = dramaticFraming(filler)
	}

	if strings.TrimSpace(s.Variants[VariantInstitutional]) == "" {
		s.Variants[VariantInstitutional] = institutionalFraming(filler)
	}

	// Identical variants are a contract violation the caller must never see.
	// The duplicate is replaced with a templated framing, never the factual text.
	if s.Variants[VariantDramatic] == s.Variants[VariantFactual] {
		s.Variants[VariantDramatic] = dramaticFraming(filler)
	}

	if s.Variants[VariantInstitutional] == s.Variants[VariantFactual] ||
		s.Variants[VariantInstitutional] == s.Variants[VariantDramatic] {
		s.Variants[VariantInstitutional] = institutionalFraming(filler)
	}

	s.TopicTags = normalizeTags(s.TopicTags)

	switch s.Sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		s.Sentiment = SentimentNeutral
	}

	if strings.TrimSpace(s.PlaceName) == "" {
		s.PlaceName = PlaceUnknown
	}

	s.CountryCode = normalizeCountryCode(s.CountryCode)
	s.EditorialRemark = TruncateWords(strings.TrimSpace(s.EditorialRemark), remarkWordLimit)
	s.AudienceReaction = normalizeReactions(s.AudienceReaction)
}

// DegradedVariantSet builds the fixed fallback set used when generation
// failed: variant texts derived from the untransformed article, neutral
// sentiment, unknown place and country, all-zero reaction scores.
func DegradedVariantSet(body string) *VariantSet {
	set := &VariantSet{
		Variants:    map[string]string{},
		Sentiment:   SentimentNeutral,
		PlaceName:   PlaceUnknown,
		CountryCode: CountryUnknown,
	}
	set.Repair(body)

	return set
}

func normalizeTags(tags []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}

	if len(out) == 0 {
		return []string{DefaultTopicTag}
	}

	return out
}

func normalizeCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == CountryGlobal {
		return code
	}

	if len(code) != 2 {
		return CountryUnknown
	}

	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return CountryUnknown
		}
	}

	return code
}

func normalizeReactions(reactions map[string]map[string]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(VariantNames))

	for _, variant := range VariantNames {
		scores := make(map[string]int, len(FactionKeys))
		for _, faction := range FactionKeys {
			scores[faction] = ClampReactionScore(reactions[variant][faction])
		}
		out[variant] = scores
	}

	return out
}

// ClampReactionScore forces a score into the allowed [-10, 10] range.
func ClampReactionScore(score int) int {
	if score < ReactionScoreMin {
		return ReactionScoreMin
	}
	if score > ReactionScoreMax {
		return ReactionScoreMax
	}

	return score
}

func dramaticFraming(lead string) string {
	return "Shockwaves tonight as word spreads: " + lead +
		" Witnesses say nothing will be the same again."
}

func institutionalFraming(lead string) string {
	return "Officials confirm the situation is well in hand. " + lead +
		" Authorities praise the measured response and urge continued confidence."
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TruncateWords hard-truncates text to at most limit words. A limit of zero
// or below returns the text unchanged.
func TruncateWords(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}

	return strings.Join(words[:limit], " ")
}
