package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Report is the subset of upstream weather data the service exposes
type Report struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// Client is the capability interface for the weather collaborator. The core
// never depends on the upstream's internals.
type Client interface {
	// FetchWeather returns current conditions for a city
	FetchWeather(ctx context.Context, city string) (*Report, error)
}

// Compile-time interface satisfaction check.
var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client against an OpenWeatherMap-compatible API
type HTTPClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPClient creates a weather client with a bounded request timeout
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// upstreamResponse mirrors the OpenWeatherMap current-weather payload shape
type upstreamResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// FetchWeather queries the upstream for current conditions in metric units
func (c *HTTPClient) FetchWeather(ctx context.Context, city string) (*Report, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	var payload upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	report := &Report{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
	}
	if report.City == "" {
		report.City = city
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
	}
	return report, nil
}
