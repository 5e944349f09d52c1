package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoop-harvester/domain"
	"scoop-harvester/driver"
)

// fakeGeocoder maps place names to canned matches; unmapped names are
// not found.
type fakeGeocoder struct {
	places map[string]driver.GeocodedPlace
	err    error
	calls  []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, place string) (*driver.GeocodedPlace, error) {
	f.calls = append(f.calls, place)

	if f.err != nil {
		return nil, f.err
	}

	if match, ok := f.places[place]; ok {
		return &match, nil
	}

	return nil, domain.ErrPlaceNotFound
}

// fakeCountryExtractor serves a fixed country; the rest of the generator
// surface is unused by the resolver.
type fakeCountryExtractor struct {
	country string
}

func (f *fakeCountryExtractor) GenerateVariants(context.Context, string, string) GenerationResult {
	return GenerationResult{}
}

func (f *fakeCountryExtractor) Simplify(_ context.Context, text string, _ int) string {
	return text
}

func (f *fakeCountryExtractor) ExtractPlace(context.Context, string, string) string {
	return domain.PlaceUnknown
}

func (f *fakeCountryExtractor) ExtractCountry(context.Context, string, string) string {
	if f.country == "" {
		return domain.PlaceUnknown
	}

	return f.country
}

func TestResolve(t *testing.T) {
	t.Run("should resolve macro-regions from the curated table before geocoding", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{}, testLogger())

		loc := resolver.Resolve(context.Background(), "Middle East", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, "Middle East", loc.DisplayName)
		assert.Empty(t, geocoder.calls, "curated region hit must not reach the geocoder")
	})

	t.Run("should geocode a literal place and keep the caller's name", func(t *testing.T) {
		geocoder := &fakeGeocoder{places: map[string]driver.GeocodedPlace{
			"Heidelberg": {Latitude: 49.4, Longitude: 8.7, DisplayName: "Heidelberg, Baden-Württemberg, Germany"},
		}}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{}, testLogger())

		loc := resolver.Resolve(context.Background(), "Heidelberg", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, 49.4, *loc.Latitude)
		assert.Equal(t, "Heidelberg", loc.DisplayName)
	})

	t.Run("should fall back to the curated city table when geocoding finds nothing", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{}, testLogger())

		loc := resolver.Resolve(context.Background(), "greater Tokyo area", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, "Tokyo", loc.DisplayName)
	})

	t.Run("should derive a country from the text when the place is unusable", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{country: "Kenya"}, testLogger())

		loc := resolver.Resolve(context.Background(), domain.PlaceUnknown, "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, "Kenya", loc.DisplayName)
		assert.Empty(t, geocoder.calls, "curated country hit must not reach the geocoder")
	})

	t.Run("should geocode an uncurated derived country and keep its name", func(t *testing.T) {
		geocoder := &fakeGeocoder{places: map[string]driver.GeocodedPlace{
			"Liechtenstein": {Latitude: 47.2, Longitude: 9.6, DisplayName: "Liechtenstein"},
		}}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{country: "Liechtenstein"}, testLogger())

		loc := resolver.Resolve(context.Background(), "", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, "Liechtenstein", loc.DisplayName)
	})

	t.Run("should fall back to the global marker when every stage fails", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{}, testLogger())

		loc := resolver.Resolve(context.Background(), "Nowhereville", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, domain.GlobalDisplayName, loc.DisplayName)
		assert.Zero(t, *loc.Latitude)
		assert.Zero(t, *loc.Longitude)
	})

	t.Run("should survive a geocoder outage via the remaining stages", func(t *testing.T) {
		geocoder := &fakeGeocoder{err: domain.ErrGeocoderUnavailable}
		resolver := NewLocationResolverService(geocoder, &fakeCountryExtractor{}, testLogger())

		loc := resolver.Resolve(context.Background(), "central Moscow", "title", "body")

		require.True(t, loc.HasCoordinates())
		assert.Equal(t, "Moscow", loc.DisplayName)
	})

	t.Run("should always return a coordinate pair", func(t *testing.T) {
		resolver := NewLocationResolverService(&fakeGeocoder{}, &fakeCountryExtractor{}, testLogger())

		for _, place := range []string{"", "Unknown", "unmappable gibberish"} {
			loc := resolver.Resolve(context.Background(), place, "t", "b")

			assert.True(t, loc.HasCoordinates(), "place %q", place)
			assert.NotNil(t, loc.Latitude)
			assert.NotNil(t, loc.Longitude)
		}
	})
}
