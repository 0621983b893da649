// Package weather reads air temperatures from the NWS API: tomorrow's
// forecast high for the heat-wave alert and latest station observations for
// the beach composers.
package weather

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/units"
)

type Client struct {
	client *resty.Client
}

func NewClient(client *resty.Client) *Client {
	return &Client{client: client}
}

type pointResponse struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		ObservationStations string `json:"observationStations"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Name            string `json:"name"`
			StartTime       string `json:"startTime"`
			IsDaytime       bool   `json:"isDaytime"`
			Temperature     int    `json:"temperature"`
			TemperatureUnit string `json:"temperatureUnit"`
		} `json:"periods"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		ID string `json:"id"`
	} `json:"features"`
}

type observationResponse struct {
	Properties struct {
		Temperature struct {
			Value    *float64 `json:"value"`
			UnitCode string   `json:"unitCode"`
		} `json:"temperature"`
	} `json:"properties"`
}

func (c *Client) point(ctx context.Context, lat, lon float64) (*pointResponse, error) {
	var pt pointResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&pt).
		Get(fmt.Sprintf("/points/%.4f,%.4f", lat, lon))
	if err != nil {
		return nil, fmt.Errorf("fetching point metadata: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching point metadata: status %d", resp.StatusCode())
	}
	return &pt, nil
}

// ForecastHighF returns the forecast daytime high for the given day at the
// given coordinates.
func (c *Client) ForecastHighF(ctx context.Context, lat, lon float64, day time.Time) (int, error) {
	pt, err := c.point(ctx, lat, lon)
	if err != nil {
		return 0, err
	}

	var fc forecastResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&fc).
		Get(pt.Properties.Forecast)
	if err != nil {
		return 0, fmt.Errorf("fetching forecast: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fetching forecast: status %d", resp.StatusCode())
	}

	target := day.Format("2006-01-02")
	for _, p := range fc.Properties.Periods {
		if !p.IsDaytime {
			continue
		}
		start, err := time.Parse(time.RFC3339, p.StartTime)
		if err != nil {
			continue
		}
		if start.Format("2006-01-02") == target {
			log.Debug().Str("period", p.Name).Int("high_f", p.Temperature).Msg("Found forecast high")
			return p.Temperature, nil
		}
	}

	return 0, fmt.Errorf("no daytime forecast period for %s", target)
}

// LatestAirTempF returns the most recent observed air temperature near the
// given coordinates, in whole Fahrenheit.
func (c *Client) LatestAirTempF(ctx context.Context, lat, lon float64) (int, error) {
	pt, err := c.point(ctx, lat, lon)
	if err != nil {
		return 0, err
	}

	var stations stationsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&stations).
		Get(pt.Properties.ObservationStations)
	if err != nil {
		return 0, fmt.Errorf("fetching observation stations: %w", err)
	}
	if resp.IsError() || len(stations.Features) == 0 {
		return 0, fmt.Errorf("no observation stations near %.4f,%.4f", lat, lon)
	}

	var obs observationResponse
	resp, err = c.client.R().
		SetContext(ctx).
		SetResult(&obs).
		Get(stations.Features[0].ID + "/observations/latest")
	if err != nil {
		return 0, fmt.Errorf("fetching observation: %w", err)
	}
	if resp.IsError() || obs.Properties.Temperature.Value == nil {
		return 0, fmt.Errorf("no temperature in latest observation")
	}

	v := *obs.Properties.Temperature.Value
	if obs.Properties.Temperature.UnitCode == "wmoUnit:degF" {
		return int(math.Round(v)), nil
	}
	return units.CelsiusToFahrenheit(v), nil
}
