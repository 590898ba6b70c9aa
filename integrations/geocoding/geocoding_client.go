package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/monitoring"
	"golang.org/x/time/rate"
)

const (
	MinQueryLength  = 3
	SuggestionLimit = 5
	NotFoundMessage = "no address found"
)

type feature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

type Option func(*client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit paces outgoing lookups to rps requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		if rps <= 0 {
			return
		}
		common.WrapHTTPClient(c.httpClient, common.RateLimitHandler(rate.NewLimiter(rate.Limit(rps), 1)))
	}
}

func NewClient(baseURL, accessToken string, opts ...Option) *client {
	c := &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  common.NewHTTPClient(10 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	// cache hits skip the rate limiter
	common.WrapHTTPClient(c.httpClient, common.NewResponseCache(1000, 10*time.Minute).Middleware())
	return c
}

func NewClientFromConfig(cfg config.Config) *client {
	return NewClient(cfg.Maps.GeocodingAPIURL, cfg.Maps.AccessToken, WithRateLimit(cfg.Maps.GeocodingRateLimit))
}

func (c *client) suggestURL(query string) string {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("autocomplete", "true")
	params.Set("types", "address")
	params.Set("country", "us")
	params.Set("limit", fmt.Sprint(SuggestionLimit))
	return fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s", c.baseURL, url.PathEscape(query), params.Encode())
}

func notFound() dtos.AddressSuggestions {
	return dtos.AddressSuggestions{
		Suggestions: []dtos.AddressSuggestion{},
		NotFound:    true,
		Message:     NotFoundMessage,
	}
}

func (c *client) Suggest(ctx context.Context, fragment string) dtos.AddressSuggestions {
	query := strings.TrimSpace(fragment)
	if len(query) < MinQueryLength {
		return dtos.AddressSuggestions{Suggestions: []dtos.AddressSuggestion{}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.suggestURL(query), nil)
	if err != nil {
		slog.Warn("could not build geocoding request", "err", err)
		monitoring.GeocodingRequests.WithLabelValues("error").Inc()
		return notFound()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("geocoding request failed", "err", err)
		monitoring.GeocodingRequests.WithLabelValues("error").Inc()
		return notFound()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("geocoding request returned unexpected status", "status", resp.StatusCode)
		monitoring.GeocodingRequests.WithLabelValues("error").Inc()
		return notFound()
	}

	var collection featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		slog.Warn("could not decode geocoding response", "err", err)
		monitoring.GeocodingRequests.WithLabelValues("error").Inc()
		return notFound()
	}

	suggestions := make([]dtos.AddressSuggestion, 0, len(collection.Features))
	for _, f := range collection.Features {
		// center is [lon, lat]
		if len(f.Center) < 2 {
			continue
		}
		suggestions = append(suggestions, dtos.AddressSuggestion{
			PlaceName: f.PlaceName,
			Coordinates: dtos.Coordinates{
				Latitude:  f.Center[1],
				Longitude: f.Center[0],
			},
		})
	}

	if len(suggestions) == 0 {
		monitoring.GeocodingRequests.WithLabelValues("not_found").Inc()
		return notFound()
	}

	monitoring.GeocodingRequests.WithLabelValues("found").Inc()
	selected := suggestions[0].Coordinates
	return dtos.AddressSuggestions{
		Suggestions: suggestions,
		Selected:    &selected,
	}
}

func (c *client) Geocode(ctx context.Context, address string) (dtos.Coordinates, bool) {
	res := c.Suggest(ctx, address)
	if res.NotFound || res.Selected == nil {
		return dtos.Coordinates{}, false
	}
	return *res.Selected, true
}
