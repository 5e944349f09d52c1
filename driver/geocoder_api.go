// ABOUTME: Nominatim-style geocoding client with bounded retry on transient
// ABOUTME: failures; a no-match result is permanent and never retried
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cenkalti/backoff/v5"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// GeocodedPlace is one successful geocoder match.
type GeocodedPlace struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// GeocoderClient queries a live geocoding service for literal place names.
type GeocoderClient struct {
	cfg        *config.GeocoderConfig
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeocoderClient creates a geocoder API client.
func NewGeocoderClient(cfg *config.GeocoderConfig, userAgent string, logger *slog.Logger) *GeocoderClient {
	return &GeocoderClient{
		cfg:       cfg,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Geocode resolves a place name to coordinates. Transient failures (network,
// 5xx) are retried up to the configured attempt budget with a fixed delay;
// an empty result set returns ErrPlaceNotFound without further attempts.
func (c *GeocoderClient) Geocode(ctx context.Context, place string) (*GeocodedPlace, error) {
	operation := func() (*GeocodedPlace, error) {
		return c.geocodeOnce(ctx, place)
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.cfg.RetryDelay)),
		backoff.WithMaxTries(uint(c.cfg.MaxAttempts)))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *GeocoderClient) geocodeOnce(ctx context.Context, place string) (*GeocodedPlace, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")

	searchURL := c.cfg.BaseURL + "/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create geocode request: %w", err))
	}

	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("geocode request failed", "place", place, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocoder returned non-200 status", "place", place, "status", resp.Status)

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: status %s", domain.ErrGeocoderUnavailable, resp.Status)
		}

		return nil, backoff.Permanent(fmt.Errorf("geocode request rejected: status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err)
	}

	var results []geocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to parse geocode response: %w", err))
	}

	if len(results) == 0 {
		return nil, backoff.Permanent(fmt.Errorf("%w: %q", domain.ErrPlaceNotFound, place))
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid latitude in geocode response: %w", err))
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid longitude in geocode response: %w", err))
	}

	display := results[0].DisplayName
	if display == "" {
		display = place
	}

	return &GeocodedPlace{Latitude: lat, Longitude: lon, DisplayName: display}, nil
}
