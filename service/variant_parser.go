// ABOUTME: Parsing cascade that recovers a structured variant set from the
// ABOUTME: completion service's free-form replies, one strategy at a time
package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"scoop-harvester/domain"
)

// parseStrategy attempts to pull a JSON object out of a raw reply. Each
// strategy is pure and independently testable; the cascade stops at the
// first success.
type parseStrategy struct {
	name  string
	parse func(reply string) (map[string]any, bool)
}

// parseCascade is the ordered list of recovery strategies, strictest first.
var parseCascade = []parseStrategy{
	{name: "balanced_brace_span", parse: parseBalancedBraceSpan},
	{name: "loose_brace_match", parse: parseLooseBraceMatch},
	{name: "whole_reply", parse: parseWholeReply},
	{name: "auto_repair", parse: parseWithAutoRepair},
	{name: "per_field", parse: parsePerField},
}

// parseReply runs the cascade and converts the first successful parse into a
// variant set. Returns the winning strategy name for observability.
func parseReply(reply string) (*domain.VariantSet, string, bool) {
	for _, strategy := range parseCascade {
		if obj, ok := strategy.parse(reply); ok {
			return mapToVariantSet(obj), strategy.name, true
		}
	}

	return nil, "", false
}

// parseBalancedBraceSpan locates the first balanced {...} span by brace
// counting (string-literal aware) and parses it as JSON.
func parseBalancedBraceSpan(reply string) (map[string]any, bool) {
	start := strings.IndexByte(reply, '{')
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(reply); i++ {
		c := reply[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = inString
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return unmarshalObject(reply[start : i+1])
				}
			}
		}
	}

	return nil, false
}

var looseBracePattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseLooseBraceMatch falls back to the widest {...} regex match. Greedy on
// purpose: replies often close with explanation after the object.
func parseLooseBraceMatch(reply string) (map[string]any, bool) {
	match := looseBracePattern.FindString(reply)
	if match == "" {
		return nil, false
	}

	return unmarshalObject(match)
}

// parseWholeReply attempts to parse the entire trimmed reply as JSON.
func parseWholeReply(reply string) (map[string]any, bool) {
	return unmarshalObject(strings.TrimSpace(reply))
}

var (
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyPattern       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// parseWithAutoRepair applies light syntactic repair (strip trailing commas,
// quote bare keys) to the widest brace span, then reparses.
func parseWithAutoRepair(reply string) (map[string]any, bool) {
	candidate := looseBracePattern.FindString(reply)
	if candidate == "" {
		candidate = strings.TrimSpace(reply)
	}

	repaired := trailingCommaPattern.ReplaceAllString(candidate, "$1")
	repaired = bareKeyPattern.ReplaceAllString(repaired, `$1"$2":`)

	return unmarshalObject(repaired)
}

var stringFieldPatterns = map[string]*regexp.Regexp{
	"factual":          fieldPattern("factual"),
	"dramatic":         fieldPattern("dramatic"),
	"institutional":    fieldPattern("institutional"),
	"sentiment":        fieldPattern("sentiment"),
	"place_name":       fieldPattern("place_name"),
	"country_code":     fieldPattern("country_code"),
	"editorial_remark": fieldPattern("editorial_remark"),
}

var topicTagsPattern = regexp.MustCompile(`"topic_tags"\s*:\s*\[([^\]]*)\]`)

func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`"` + key + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
}

// parsePerField is the last resort: pull out each named field individually,
// unescaping embedded control sequences. Succeeds as long as at least one
// variant text was recovered.
func parsePerField(reply string) (map[string]any, bool) {
	obj := map[string]any{}

	for key, pattern := range stringFieldPatterns {
		match := pattern.FindStringSubmatch(reply)
		if match == nil {
			continue
		}

		obj[key] = unescapeFieldValue(match[1])
	}

	if match := topicTagsPattern.FindStringSubmatch(reply); match != nil {
		var tags []any
		for _, part := range strings.Split(match[1], ",") {
			part = strings.Trim(strings.TrimSpace(part), `"`)
			if part != "" {
				tags = append(tags, part)
			}
		}
		obj["topic_tags"] = tags
	}

	// The reaction matrix is a nested object; recover it from its own
	// balanced span when present.
	if idx := strings.Index(reply, `"audience_reaction"`); idx >= 0 {
		if nested, ok := parseBalancedBraceSpan(reply[idx:]); ok {
			obj["audience_reaction"] = nested
		}
	}

	hasVariant := false
	for _, key := range domain.VariantNames {
		if _, ok := obj[key]; ok {
			hasVariant = true
			break
		}
	}

	if !hasVariant {
		return nil, false
	}

	return obj, true
}

func unescapeFieldValue(raw string) string {
	unquoted, err := strconv.Unquote(`"` + raw + `"`)
	if err != nil {
		return raw
	}

	return unquoted
}

func unmarshalObject(candidate string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}

	return obj, true
}

// mapToVariantSet converts a loosely-typed parsed object into a VariantSet.
// Unexpected shapes degrade to zero values; Repair fills the gaps afterwards.
func mapToVariantSet(obj map[string]any) *domain.VariantSet {
	set := &domain.VariantSet{
		Variants:         map[string]string{},
		Sentiment:        stringField(obj, "sentiment"),
		PlaceName:        stringField(obj, "place_name"),
		CountryCode:      stringField(obj, "country_code"),
		EditorialRemark:  stringField(obj, "editorial_remark"),
		AudienceReaction: map[string]map[string]int{},
	}

	for _, variant := range domain.VariantNames {
		set.Variants[variant] = stringField(obj, variant)
	}

	if rawTags, ok := obj["topic_tags"].([]any); ok {
		for _, rawTag := range rawTags {
			if tag, ok := rawTag.(string); ok {
				set.TopicTags = append(set.TopicTags, tag)
			}
		}
	}

	if rawMatrix, ok := obj["audience_reaction"].(map[string]any); ok {
		for _, variant := range domain.VariantNames {
			scores, ok := rawMatrix[variant].(map[string]any)
			if !ok {
				continue
			}

			row := map[string]int{}
			for _, faction := range domain.FactionKeys {
				row[faction] = intField(scores, faction)
			}
			set.AudienceReaction[variant] = row
		}
	}

	return set
}

func stringField(obj map[string]any, key string) string {
	if value, ok := obj[key].(string); ok {
		return strings.TrimSpace(value)
	}

	return ""
}

// intField coerces a score to int; non-numeric and missing values become 0.
func intField(obj map[string]any, key string) int {
	switch value := obj[key].(type) {
	case float64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}

	return 0
}
