package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvedLocation(t *testing.T) {
	t.Run("should carry both coordinates when built from a pair", func(t *testing.T) {
		loc := NewResolvedLocation(52.52, 13.405, "Berlin")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, 52.52, *loc.Latitude)
		assert.Equal(t, 13.405, *loc.Longitude)
		assert.Equal(t, "Berlin", loc.DisplayName)
	})

	t.Run("should report no coordinates for the zero value", func(t *testing.T) {
		var loc ResolvedLocation

		assert.False(t, loc.HasCoordinates())
		assert.Nil(t, loc.Latitude)
		assert.Nil(t, loc.Longitude)
	})

	t.Run("should pin the global marker at the origin", func(t *testing.T) {
		loc := GlobalLocation()

		require.True(t, loc.HasCoordinates())
		assert.Zero(t, *loc.Latitude)
		assert.Zero(t, *loc.Longitude)
		assert.Equal(t, GlobalDisplayName, loc.DisplayName)
	})
}

func TestLookupRegionCenter(t *testing.T) {
	t.Run("should match a region name exactly", func(t *testing.T) {
		loc, ok := LookupRegionCenter("Middle East")

		require.True(t, ok)
		assert.Equal(t, "Middle East", loc.DisplayName)
		assert.True(t, loc.HasCoordinates())
	})

	t.Run("should match a region name used as a prefix", func(t *testing.T) {
		_, ok := LookupRegionCenter("eastern europe border zone")

		assert.True(t, ok)
	})

	t.Run("should match a region name used as a suffix", func(t *testing.T) {
		_, ok := LookupRegionCenter("coastal west africa")

		assert.True(t, ok)
	})

	t.Run("should not match ordinary city names", func(t *testing.T) {
		_, ok := LookupRegionCenter("Paris")

		assert.False(t, ok)
	})

	t.Run("should not match blank input", func(t *testing.T) {
		_, ok := LookupRegionCenter("   ")

		assert.False(t, ok)
	})
}

func TestLookupCityCenter(t *testing.T) {
	t.Run("should match a city by substring", func(t *testing.T) {
		loc, ok := LookupCityCenter("downtown Tokyo district")

		require.True(t, ok)
		assert.Equal(t, "Tokyo", loc.DisplayName)
	})

	t.Run("should match regardless of case", func(t *testing.T) {
		_, ok := LookupCityCenter("BERLIN")

		assert.True(t, ok)
	})

	t.Run("should not match unlisted places", func(t *testing.T) {
		_, ok := LookupCityCenter("Smallville")

		assert.False(t, ok)
	})
}

func TestLookupCountryCenter(t *testing.T) {
	t.Run("should match a country name exactly", func(t *testing.T) {
		loc, ok := LookupCountryCenter("germany")

		require.True(t, ok)
		assert.Equal(t, "Germany", loc.DisplayName)
	})

	t.Run("should match a country embedded in a longer phrase", func(t *testing.T) {
		loc, ok := LookupCountryCenter("the republic of france")

		require.True(t, ok)
		assert.Equal(t, "France", loc.DisplayName)
	})

	t.Run("should not match unknown countries", func(t *testing.T) {
		_, ok := LookupCountryCenter("Atlantis")

		assert.False(t, ok)
	})
}

func TestContainsGlobalLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"worldwide marker", "Markets react worldwide to the announcement", true},
		{"around the world marker", "Leaders around the world responded", true},
		{"global marker", "A truly Global phenomenon", true},
		{"no marker", "The mayor opened a new bridge", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsGlobalLanguage(tt.text))
		})
	}
}
