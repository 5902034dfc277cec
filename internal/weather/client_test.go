// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a stub provider with rate limiting off.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClientWithConfig(&ClientConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Timeout:           2 * time.Second,
		RequestsPerMinute: 0,
	})
}

func TestCurrent_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Paris", r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Paris",
			"weather": [{"description": "scattered clouds"}],
			"main": {"temp": 30.4, "humidity": 70}
		}`))
	})

	obs, err := client.Current(context.Background(), "Paris")
	require.NoError(t, err)
	require.Equal(t, "Paris", obs.Place)
	require.Equal(t, 30, obs.TemperatureC)
	require.Equal(t, 70, obs.HumidityPct)
	require.Equal(t, "scattered clouds", obs.Description)
}

func TestCurrent_TemperatureRounding(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected int
	}{
		{name: "round up", raw: 29.6, expected: 30},
		{name: "round down", raw: 29.4, expected: 29},
		{name: "negative rounds away from zero", raw: -3.6, expected: -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := observationFrom("X", currentResponse{
				Main: struct {
					Temp     float64 `json:"temp"`
					Humidity int     `json:"humidity"`
				}{Temp: tc.raw, Humidity: 50},
			})
			require.Equal(t, tc.expected, got.TemperatureC)
		})
	}
}

func TestCurrent_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{name: "401 is unauthorized", status: http.StatusUnauthorized, check: IsUnauthorized},
		{name: "403 is unauthorized", status: http.StatusForbidden, check: IsUnauthorized},
		{name: "404 is not found", status: http.StatusNotFound, check: IsNotFound},
		{name: "500 is unavailable", status: http.StatusInternalServerError, check: IsUnavailable},
		{name: "429 is unavailable", status: http.StatusTooManyRequests, check: IsUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			obs, err := client.Current(context.Background(), "Nowhere")
			require.Error(t, err)
			require.Nil(t, obs)
			require.True(t, tc.check(err), "error %v not classified as expected", err)
		})
	}
}

func TestCurrent_TransportFailureIsUnavailable(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "k",
		Timeout: 500 * time.Millisecond,
	})

	_, err := client.Current(context.Background(), "Paris")
	require.Error(t, err)
	require.True(t, IsUnavailable(err))
	require.False(t, IsUnauthorized(err))
	require.False(t, IsNotFound(err))
}

func TestCurrent_ProviderErrorMessageSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"cod": "400", "message": "nothing to geocode"}`))
	})

	_, err := client.Current(context.Background(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nothing to geocode")
	require.True(t, IsUnavailable(err))
}

func TestCurrent_FallsBackToQueryPlaceName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather": [], "main": {"temp": 20, "humidity": 40}}`))
	})

	obs, err := client.Current(context.Background(), "Springfield")
	require.NoError(t, err)
	require.Equal(t, "Springfield", obs.Place)
	require.Equal(t, "", obs.Description)
}

func TestHasAPIKey(t *testing.T) {
	require.False(t, NewClient("").HasAPIKey())
	require.False(t, NewClient("   ").HasAPIKey())
	require.True(t, NewClient("abc").HasAPIKey())
}
