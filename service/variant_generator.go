// ABOUTME: Variant generation against the completion service: fixed prompt
// ABOUTME: templates, defensive reply cleanup, and degraded-set fallback
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"scoop-harvester/domain"
)

const variantSystemPrompt = `You are a newsroom rewriting desk. You rewrite source articles into three
stylistically distinct variants and derive structured metadata. You reply with
a single JSON object and nothing else.`

const variantPromptTemplate = `Rewrite the article below into three variants and derive metadata.

Reply with EXACTLY ONE JSON object containing these nine fields:
- "factual": sober, neutral retelling (50-100 words)
- "dramatic": sensational, alarmist retelling (50-100 words)
- "institutional": favorable, official-toned retelling (50-100 words)
- "topic_tags": array of 1-4 uppercase topic tags
- "sentiment": one of "positive", "negative", "neutral"
- "place_name": most relevant place, or "Unknown"
- "country_code": 2-letter ISO code, "GLOBAL", or "XX"
- "editorial_remark": editor's aside, at most 15 words
- "audience_reaction": object with keys "factual", "dramatic",
  "institutional"; each maps the factions %s to an integer from -10 to 10

TITLE: %s

ARTICLE:
---
%s
---

Output the JSON object only. No preamble, no markdown fences, no commentary.`

const simplifySystemPrompt = `You rewrite text in plain, simple language. You reply with the rewritten text
only: no preamble, no quotes, no explanation.`

const extractPlaceTemplate = `Name the single most relevant city, region, or place for this news item.
Reply with the place name only. If none can be determined, reply Unknown.

TITLE: %s

TEXT: %s`

const extractCountryTemplate = `Name the single most relevant country for this news item.
Reply with the country name only. If none can be determined, reply Unknown.

TITLE: %s

TEXT: %s`

// headlineOverrunTolerance: output 1-2 words over a requested ceiling is
// kept as-is to avoid destroying meaning; anything past that is truncated.
const headlineOverrunTolerance = 2

// variantGeneratorService implementation.
type variantGeneratorService struct {
	completion CompletionService
	logger     *slog.Logger
}

// NewVariantGeneratorService creates a new variant generator service.
func NewVariantGeneratorService(completion CompletionService, logger *slog.Logger) VariantGeneratorService {
	return &variantGeneratorService{
		completion: completion,
		logger:     logger,
	}
}

// GenerateVariants runs one completion and parses a variant set out of the
// reply. Ingestion must never abort because generation failed once: on a
// completion error or an unrecoverable parse failure the result degrades to
// a set built from the untransformed article text.
func (s *variantGeneratorService) GenerateVariants(ctx context.Context, title, body string) GenerationResult {
	prompt := fmt.Sprintf(variantPromptTemplate,
		strings.Join(domain.FactionKeys, ", "), title, body)

	reply, err := s.completion.Complete(ctx, variantSystemPrompt, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "completion failed, using degraded variant set",
			"title", title, "error", err)

		return GenerationResult{Set: domain.DegradedVariantSet(body), Status: GenerationDegraded}
	}

	set, strategy, ok := parseReply(cleanReply(reply))
	if !ok {
		s.logger.WarnContext(ctx, "no parse strategy recovered a result, using degraded variant set",
			"title", title, "reply_length", len(reply), "error", domain.ErrGenerationParseFailure)

		return GenerationResult{Set: domain.DegradedVariantSet(body), Status: GenerationDegraded}
	}

	set.Repair(body)

	s.logger.DebugContext(ctx, "variant set generated",
		"title", title, "parse_strategy", strategy)

	return GenerationResult{Set: set, Status: GenerationParsed}
}

// Simplify rewrites text in simpler language, optionally enforcing a word
// ceiling for headline-length output. On completion failure the original
// text is returned, truncated to the ceiling when one was requested.
func (s *variantGeneratorService) Simplify(ctx context.Context, text string, maxWords int) string {
	prompt := "Rewrite the following in simpler language"
	if maxWords > 0 {
		prompt += fmt.Sprintf(", using at most %d words", maxWords)
	}
	prompt += ":\n\n" + text

	reply, err := s.completion.Complete(ctx, simplifySystemPrompt, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "simplification failed, keeping original text", "error", err)
		return enforceWordCeiling(text, maxWords)
	}

	simplified := cleanSingleLineReply(reply)
	if simplified == "" {
		return enforceWordCeiling(text, maxWords)
	}

	return enforceWordCeiling(simplified, maxWords)
}

// ExtractPlace asks for the single most relevant place name. Returns the
// Unknown sentinel on any failure.
func (s *variantGeneratorService) ExtractPlace(ctx context.Context, title, body string) string {
	return s.extractField(ctx, fmt.Sprintf(extractPlaceTemplate, title, domain.TruncateWords(body, 200)),
		[]string{"place:", "location:", "place name:"})
}

// ExtractCountry asks for the single most relevant country name. Returns the
// Unknown sentinel on any failure.
func (s *variantGeneratorService) ExtractCountry(ctx context.Context, title, body string) string {
	return s.extractField(ctx, fmt.Sprintf(extractCountryTemplate, title, domain.TruncateWords(body, 200)),
		[]string{"country:", "country name:"})
}

func (s *variantGeneratorService) extractField(ctx context.Context, prompt string, labels []string) string {
	reply, err := s.completion.Complete(ctx, simplifySystemPrompt, prompt)
	if err != nil {
		return domain.PlaceUnknown
	}

	value := cleanSingleLineReply(reply)

	for _, label := range labels {
		if len(value) >= len(label) && strings.EqualFold(value[:len(label)], label) {
			value = strings.TrimSpace(value[len(label):])
		}
	}

	// Trailing explanation after the name is a common failure mode.
	if idx := strings.IndexAny(value, ".;("); idx > 0 {
		value = strings.TrimSpace(value[:idx])
	}

	if value == "" || strings.EqualFold(value, "unknown") || strings.EqualFold(value, "none") {
		return domain.PlaceUnknown
	}

	return value
}

// enforceWordCeiling applies the headline tolerance rule: text more than two
// words over the ceiling is hard-truncated; one or two over is kept as-is.
func enforceWordCeiling(text string, maxWords int) string {
	if maxWords <= 0 {
		return text
	}

	if domain.WordCount(text) > maxWords+headlineOverrunTolerance {
		return domain.TruncateWords(text, maxWords)
	}

	return text
}

// cleanReply strips leaked chat-template tags and think blocks before the
// parse cascade runs.
func cleanReply(reply string) string {
	for _, tag := range []string{"<|system|>", "<|user|>", "<|assistant|>"} {
		reply = strings.ReplaceAll(reply, tag, "")
	}

	if startIdx := strings.Index(reply, "<think>"); startIdx != -1 {
		if endIdx := strings.Index(reply, "</think>"); endIdx != -1 && endIdx > startIdx {
			reply = reply[:startIdx] + reply[endIdx+len("</think>"):]
		}
	}

	return strings.TrimSpace(reply)
}

// cleanSingleLineReply reduces a reply to its first meaningful line with
// quotes and markdown fences stripped.
func cleanSingleLineReply(reply string) string {
	reply = cleanReply(reply)

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "`*")
		line = strings.Trim(line, `"'`)
		line = strings.TrimSpace(line)

		if line != "" {
			return line
		}
	}

	return ""
}
