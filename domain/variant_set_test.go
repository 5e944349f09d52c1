package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantSetRepair(t *testing.T) {
	t.Run("should fill a missing factual variant from the source body", func(t *testing.T) {
		set := &VariantSet{Variants: map[string]string{
			VariantDramatic:      "Dramatic text.",
			VariantInstitutional: "Institutional text.",
		}}

		set.Repair("The council met on Tuesday to discuss the harbor expansion.")

		assert.Contains(t, set.Variants[VariantFactual], "council met on Tuesday")
	})

	t.Run("should synthesize replacements for identical variants", func(t *testing.T) {
		same := "The exact same fifty words of copy."
		set := &VariantSet{Variants: map[string]string{
			VariantFactual:       same,
			VariantDramatic:      same,
			VariantInstitutional: same,
		}}

		set.Repair("Some source body text about a flood.")

		assert.NotEqual(t, set.Variants[VariantFactual], set.Variants[VariantDramatic])
		assert.NotEqual(t, set.Variants[VariantFactual], set.Variants[VariantInstitutional])
		assert.NotEqual(t, set.Variants[VariantDramatic], set.Variants[VariantInstitutional])
	})

	t.Run("should leave distinct variants untouched", func(t *testing.T) {
		set := &VariantSet{Variants: map[string]string{
			VariantFactual:       "Factual account.",
			VariantDramatic:      "Dramatic account!",
			VariantInstitutional: "Institutional account.",
		}}

		set.Repair("body")

		assert.Equal(t, "Factual account.", set.Variants[VariantFactual])
		assert.Equal(t, "Dramatic account!", set.Variants[VariantDramatic])
		assert.Equal(t, "Institutional account.", set.Variants[VariantInstitutional])
	})

	t.Run("should default topic tags to GENERAL", func(t *testing.T) {
		set := &VariantSet{}
		set.Repair("body")

		assert.Equal(t, []string{DefaultTopicTag}, set.TopicTags)
	})

	t.Run("should uppercase and deduplicate topic tags", func(t *testing.T) {
		set := &VariantSet{TopicTags: []string{"politics", "POLITICS", " economy ", ""}}
		set.Repair("body")

		assert.Equal(t, []string{"POLITICS", "ECONOMY"}, set.TopicTags)
	})

	t.Run("should default an invalid sentiment to neutral", func(t *testing.T) {
		set := &VariantSet{Sentiment: "ecstatic"}
		set.Repair("body")

		assert.Equal(t, SentimentNeutral, set.Sentiment)
	})

	t.Run("should keep valid sentiments", func(t *testing.T) {
		for _, sentiment := range []string{SentimentPositive, SentimentNegative, SentimentNeutral} {
			set := &VariantSet{Sentiment: sentiment}
			set.Repair("body")

			assert.Equal(t, sentiment, set.Sentiment)
		}
	})

	t.Run("should normalize country codes", func(t *testing.T) {
		tests := []struct {
			in   string
			want string
		}{
			{"de", "DE"},
			{"DE", "DE"},
			{"GLOBAL", "GLOBAL"},
			{"global", "GLOBAL"},
			{"Germany", CountryUnknown},
			{"D1", CountryUnknown},
			{"", CountryUnknown},
		}

		for _, tt := range tests {
			set := &VariantSet{CountryCode: tt.in}
			set.Repair("body")

			assert.Equal(t, tt.want, set.CountryCode, "input %q", tt.in)
		}
	})

	t.Run("should default a blank place name to Unknown", func(t *testing.T) {
		set := &VariantSet{PlaceName: "  "}
		set.Repair("body")

		assert.Equal(t, PlaceUnknown, set.PlaceName)
	})

	t.Run("should truncate the editorial remark to fifteen words", func(t *testing.T) {
		set := &VariantSet{EditorialRemark: strings.Repeat("word ", 30)}
		set.Repair("body")

		assert.LessOrEqual(t, WordCount(set.EditorialRemark), 15)
	})

	t.Run("should clamp reaction scores and fill missing factions with zero", func(t *testing.T) {
		set := &VariantSet{
			AudienceReaction: map[string]map[string]int{
				VariantFactual: {"loyalists": 99, "skeptics": -42, "merchants": 5},
			},
		}

		set.Repair("body")

		for _, variant := range VariantNames {
			require.Len(t, set.AudienceReaction[variant], len(FactionKeys))
			for _, faction := range FactionKeys {
				score := set.AudienceReaction[variant][faction]
				assert.GreaterOrEqual(t, score, ReactionScoreMin)
				assert.LessOrEqual(t, score, ReactionScoreMax)
			}
		}

		assert.Equal(t, ReactionScoreMax, set.AudienceReaction[VariantFactual]["loyalists"])
		assert.Equal(t, ReactionScoreMin, set.AudienceReaction[VariantFactual]["skeptics"])
		assert.Equal(t, 5, set.AudienceReaction[VariantFactual]["merchants"])
		assert.Equal(t, 0, set.AudienceReaction[VariantDramatic]["clergy"])
	})
}

func TestDegradedVariantSet(t *testing.T) {
	t.Run("should build a complete pairwise-distinct set from original text", func(t *testing.T) {
		set := DegradedVariantSet("A storm hit the coast overnight, damaging several piers.")

		require.NotNil(t, set)
		assert.NotEmpty(t, set.Variants[VariantFactual])
		assert.NotEmpty(t, set.Variants[VariantDramatic])
		assert.NotEmpty(t, set.Variants[VariantInstitutional])
		assert.NotEqual(t, set.Variants[VariantFactual], set.Variants[VariantDramatic])
		assert.NotEqual(t, set.Variants[VariantDramatic], set.Variants[VariantInstitutional])
		assert.Equal(t, SentimentNeutral, set.Sentiment)
		assert.Equal(t, PlaceUnknown, set.PlaceName)
		assert.Equal(t, CountryUnknown, set.CountryCode)

		for _, variant := range VariantNames {
			for _, faction := range FactionKeys {
				assert.Zero(t, set.AudienceReaction[variant][faction])
			}
		}
	})

	t.Run("should survive an empty body", func(t *testing.T) {
		set := DegradedVariantSet("")

		assert.NotEmpty(t, set.Variants[VariantFactual])
	})
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under the limit unchanged", "one two three", 5, "one two three"},
		{"over the limit truncated", "one two three four five six", 3, "one two three"},
		{"zero limit unchanged", "one two three", 0, "one two three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateWords(tt.text, tt.limit))
		})
	}
}
