package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWeather(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"London","weather":[{"description":"light rain"}],"main":{"temp":14.3}}`))
	}))
	defer upstream.Close()

	client := NewHTTPClient(upstream.URL, "test-key")

	report, err := client.FetchWeather(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", report.City)
	assert.Equal(t, 14.3, report.Temperature)
	assert.Equal(t, "light rain", report.Description)
}

func TestFetchWeatherUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	client := NewHTTPClient(upstream.URL, "test-key")

	_, err := client.FetchWeather(context.Background(), "Nowhereville")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchWeatherUnreachableUpstream(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", "test-key")

	_, err := client.FetchWeather(context.Background(), "London")
	assert.Error(t, err)
}
