// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package weather provides the HTTP client for the current-weather provider.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/thirstiq/thirstiq-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the weather client.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorKind categorizes client errors for handling. Every request failure
// maps to exactly one of the three public kinds.
type ErrorKind int

const (
	ErrKindUnavailable ErrorKind = iota
	ErrKindUnauthorized
	ErrKindNotFound
)

// Sentinel errors for easy checking.
var (
	ErrUnauthorized = &ClientError{Kind: ErrKindUnauthorized, Message: "weather provider rejected the API key"}
	ErrNotFound     = &ClientError{Kind: ErrKindNotFound, Message: "place not found"}
	ErrUnavailable  = &ClientError{Kind: ErrKindUnavailable, Message: "weather provider unavailable"}
)

// IsUnauthorized checks if an error is a bad-credentials error.
func IsUnauthorized(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == ErrKindUnauthorized
	}
	return false
}

// IsNotFound checks if an error is an unknown-place error.
func IsNotFound(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == ErrKindNotFound
	}
	return false
}

// IsUnavailable checks if an error is any other provider failure.
func IsUnavailable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == ErrKindUnavailable
	}
	// Unrecognized errors count as unavailable so callers always land on
	// one of the three kinds.
	return err != nil
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the weather client.
type ClientConfig struct {
	// BaseURL is the provider endpoint (default: OpenWeatherMap current weather)
	BaseURL string

	// APIKey authenticates requests. An empty key surfaces as Unauthorized
	// on the first fetch.
	APIKey string

	// Timeout for requests (default: 10s)
	Timeout time.Duration

	// RequestsPerMinute caps outbound calls to stay inside the free API
	// tier (default: 30). Zero disables the limiter.
	RequestsPerMinute int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://api.openweathermap.org/data/2.5/weather",
		Timeout:           10 * time.Second,
		RequestsPerMinute: 30,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Fetcher resolves a place name to an observation. The chat layer depends
// on this interface so tests can substitute a canned provider.
type Fetcher interface {
	Current(ctx context.Context, place string) (*model.Observation, error)
}

// Client fetches current weather over HTTP.
//
// The Client is safe for concurrent use, though the UI issues at most one
// fetch at a time (the input control is disabled while one is pending).
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a weather client with default configuration and the
// given API key.
func NewClient(apiKey string) *Client {
	cfg := DefaultConfig()
	cfg.APIKey = apiKey
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a weather client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if config.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), config.RequestsPerMinute)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: limiter,
	}
}

// =============================================================================
// CURRENT WEATHER
// =============================================================================

// Current fetches the current observation for a place name.
func (c *Client) Current(ctx context.Context, place string) (*model.Observation, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &ClientError{Kind: ErrKindUnavailable, Message: "rate limit wait canceled", Cause: err}
		}
	}

	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindUnavailable, Message: "invalid provider URL", Cause: err}
	}
	q := endpoint.Query()
	q.Set("q", place)
	q.Set("appid", c.config.APIKey)
	q.Set("units", "metric")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindUnavailable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindUnavailable, Message: "weather request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		// Try to surface the provider's own message
		var provErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&provErr); err == nil && provErr.Message != "" {
			return nil, &ClientError{Kind: ErrKindUnavailable, Message: provErr.Message}
		}
		return nil, &ClientError{Kind: ErrKindUnavailable, Message: "unexpected status from weather provider: " + resp.Status}
	}

	var result currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Kind: ErrKindUnavailable, Message: "failed to decode response", Cause: err}
	}

	return observationFrom(place, result), nil
}

// observationFrom converts a wire payload into the session's observation.
// Temperature rounds to the nearest integer; humidity is integral already.
func observationFrom(place string, raw currentResponse) *model.Observation {
	desc := ""
	if len(raw.Weather) > 0 {
		desc = raw.Weather[0].Description
	}

	name := raw.Name
	if strings.TrimSpace(name) == "" {
		name = place
	}

	temp := int(raw.Main.Temp + 0.5)
	if raw.Main.Temp < 0 {
		temp = int(raw.Main.Temp - 0.5)
	}

	return &model.Observation{
		Place:        name,
		TemperatureC: temp,
		HumidityPct:  raw.Main.Humidity,
		Description:  desc,
	}
}

// =============================================================================
// UTILITY METHODS
// =============================================================================

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// HasAPIKey reports whether a non-empty API key is configured.
func (c *Client) HasAPIKey() bool {
	return strings.TrimSpace(c.config.APIKey) != ""
}
