package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfwatch/surfbot/pkg/httpx"
)

// newTestClient wires a client against a mux whose point response links back
// to the same server, the way the real API hands out absolute URLs.
func newTestClient(t *testing.T) (*Client, *http.ServeMux, string) {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"properties":{"forecast":"%s/gridpoints/LOX/1,1/forecast","observationStations":"%s/gridpoints/LOX/1,1/stations"}}`,
			server.URL, server.URL)
	})

	return NewClient(httpx.New(httpx.Options{BaseURL: server.URL})), mux, server.URL
}

func mustParseDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return day
}

func TestForecastHighF(t *testing.T) {
	client, mux, _ := newTestClient(t)
	mux.HandleFunc("/gridpoints/LOX/1,1/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"properties":{"periods":[
			{"name":"Tonight","startTime":"2026-08-28T18:00:00-07:00","isDaytime":false,"temperature":68,"temperatureUnit":"F"},
			{"name":"Saturday","startTime":"2026-08-29T06:00:00-07:00","isDaytime":true,"temperature":94,"temperatureUnit":"F"},
			{"name":"Sunday","startTime":"2026-08-30T06:00:00-07:00","isDaytime":true,"temperature":88,"temperatureUnit":"F"}
		]}}`)
	})

	high, err := client.ForecastHighF(context.Background(), 34.14, -118.25, mustParseDay(t, "2026-08-29"))
	require.NoError(t, err)
	assert.Equal(t, 94, high, "nighttime periods are skipped, matching day wins")
}

func TestForecastHighFNoMatchingDay(t *testing.T) {
	client, mux, _ := newTestClient(t)
	mux.HandleFunc("/gridpoints/LOX/1,1/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"properties":{"periods":[]}}`)
	})

	_, err := client.ForecastHighF(context.Background(), 34.14, -118.25, mustParseDay(t, "2026-08-29"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no daytime forecast period")
}

func TestLatestAirTempF(t *testing.T) {
	tests := []struct {
		name     string
		obsBody  string
		wantTemp int
	}{
		{
			name:     "celsius converted",
			obsBody:  `{"properties":{"temperature":{"value":21.7,"unitCode":"wmoUnit:degC"}}}`,
			wantTemp: 71,
		},
		{
			name:     "fahrenheit rounded",
			obsBody:  `{"properties":{"temperature":{"value":72.4,"unitCode":"wmoUnit:degF"}}}`,
			wantTemp: 72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mux, base := newTestClient(t)
			mux.HandleFunc("/gridpoints/LOX/1,1/stations", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintf(w, `{"features":[{"id":"%s/stations/KBUR"}]}`, base)
			})
			mux.HandleFunc("/stations/KBUR/observations/latest", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tt.obsBody)
			})

			temp, err := client.LatestAirTempF(context.Background(), 34.14, -118.25)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemp, temp)
		})
	}
}

func TestLatestAirTempFDegraded(t *testing.T) {
	t.Run("no stations", func(t *testing.T) {
		client, mux, _ := newTestClient(t)
		mux.HandleFunc("/gridpoints/LOX/1,1/stations", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"features":[]}`)
		})

		_, err := client.LatestAirTempF(context.Background(), 34.14, -118.25)
		assert.Error(t, err)
	})

	t.Run("null temperature", func(t *testing.T) {
		client, mux, base := newTestClient(t)
		mux.HandleFunc("/gridpoints/LOX/1,1/stations", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"features":[{"id":"%s/stations/KBUR"}]}`, base)
		})
		mux.HandleFunc("/stations/KBUR/observations/latest", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"properties":{"temperature":{"value":null,"unitCode":"wmoUnit:degC"}}}`)
		})

		_, err := client.LatestAirTempF(context.Background(), 34.14, -118.25)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no temperature")
	})
}
