package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"scoop-harvester/domain"
)

// locationResolverService implementation.
type locationResolverService struct {
	geocoder  Geocoder
	generator VariantGeneratorService
	logger    *slog.Logger
}

// NewLocationResolverService creates a new location resolver service.
func NewLocationResolverService(geocoder Geocoder, generator VariantGeneratorService, logger *slog.Logger) LocationResolverService {
	return &locationResolverService{
		geocoder:  geocoder,
		generator: generator,
		logger:    logger,
	}
}

// Resolve maps a place name to coordinates through the ordered fallback
// chain, stopping at the first stage that yields a coordinate pair:
// curated region table, live geocoder, curated city table, country derived
// from the article text, and finally the Global marker. Never fails: the
// worst case is the Global location, and latitude/longitude are always set
// together.
func (s *locationResolverService) Resolve(ctx context.Context, placeName, title, body string) domain.ResolvedLocation {
	placeName = strings.TrimSpace(placeName)
	haveUsablePlace := placeName != "" && !strings.EqualFold(placeName, domain.PlaceUnknown)

	if haveUsablePlace {
		// Curated lookup takes priority over live geocoding for macro-regions:
		// geocoders handle region names unreliably.
		if loc, ok := domain.LookupRegionCenter(placeName); ok {
			s.logger.Debug("place resolved from curated region table", "place", placeName, "display", loc.DisplayName)
			return loc
		}

		if loc, ok := s.geocode(ctx, placeName); ok {
			return loc
		}

		if loc, ok := domain.LookupCityCenter(placeName); ok {
			s.logger.Debug("place resolved from curated city table", "place", placeName, "display", loc.DisplayName)
			return loc
		}
	}

	if loc, ok := s.resolveViaCountry(ctx, title, body); ok {
		return loc
	}

	if domain.ContainsGlobalLanguage(title + " " + body) {
		s.logger.Debug("place resolved to global marker via worldwide language", "place", placeName)
	} else {
		s.logger.Debug("place unresolvable, falling back to global marker", "place", placeName)
	}

	return domain.GlobalLocation()
}

func (s *locationResolverService) geocode(ctx context.Context, place string) (domain.ResolvedLocation, bool) {
	geocoded, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		if !errors.Is(err, domain.ErrPlaceNotFound) {
			s.logger.Warn("geocoding failed", "place", place, "error", err)
		}

		return domain.ResolvedLocation{}, false
	}

	// Keep the caller's place name; the geocoder's display string is a full
	// address chain and too noisy for a map label.
	return domain.NewResolvedLocation(geocoded.Latitude, geocoded.Longitude, place), true
}

// resolveViaCountry derives a country name from the article text and
// resolves that country's center instead, upgrading the display name.
func (s *locationResolverService) resolveViaCountry(ctx context.Context, title, body string) (domain.ResolvedLocation, bool) {
	country := s.generator.ExtractCountry(ctx, title, body)
	if country == domain.PlaceUnknown || strings.EqualFold(country, domain.GlobalDisplayName) {
		return domain.ResolvedLocation{}, false
	}

	if loc, ok := domain.LookupCountryCenter(country); ok {
		s.logger.Debug("place resolved via derived country", "country", country)
		return loc, true
	}

	if loc, ok := s.geocode(ctx, country); ok {
		loc.DisplayName = country
		return loc, true
	}

	return domain.ResolvedLocation{}, false
}
