// Package tide fetches high/low tide predictions for a NOAA station, used
// by the beach-mode composers.
package tide

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

type ExtremeType string

const (
	ExtremeHigh ExtremeType = "HIGH"
	ExtremeLow  ExtremeType = "LOW"
)

// Extreme is one predicted high or low tide.
type Extreme struct {
	Type     ExtremeType
	Time     time.Time
	HeightFt float64
}

type Client struct {
	client *resty.Client
}

func NewClient(client *resty.Client) *Client {
	return &Client{client: client}
}

type noaaPrediction struct {
	Time   string  `json:"t"`
	Height string  `json:"v"`
	Type   *string `json:"type,omitempty"`
}

type noaaResponse struct {
	Predictions []noaaPrediction `json:"predictions"`
}

// DayExtremes returns the predicted highs and lows for one station on one
// calendar day, in the station's local time.
func (c *Client) DayExtremes(ctx context.Context, stationID string, day time.Time, location *time.Location) ([]Extreme, error) {
	dateStr := day.Format("20060102")

	var noaaResp noaaResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&noaaResp).
		Get(fmt.Sprintf("/api/prod/datagetter"+
			"?station=%s&begin_date=%s&end_date=%s&product=predictions&datum=MLLW"+
			"&units=english&time_zone=lst_ldt&format=json&interval=hilo",
			stationID, dateStr, dateStr))
	if err != nil {
		return nil, fmt.Errorf("fetching tide extremes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching tide extremes: status %d", resp.StatusCode())
	}

	extremes := make([]Extreme, 0, len(noaaResp.Predictions))
	for _, p := range noaaResp.Predictions {
		// NOAA times come back as "2006-01-02 15:04" in station local time.
		t, err := time.ParseInLocation("2006-01-02 15:04", p.Time, location)
		if err != nil {
			return nil, fmt.Errorf("parsing time %s: %w", p.Time, err)
		}

		height, err := strconv.ParseFloat(p.Height, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing height %s: %w", p.Height, err)
		}

		extremeType := ExtremeLow
		if p.Type != nil && *p.Type == "H" {
			extremeType = ExtremeHigh
		}

		extremes = append(extremes, Extreme{
			Type:     extremeType,
			Time:     t,
			HeightFt: height,
		})
	}

	log.Debug().Str("station", stationID).Int("extreme_count", len(extremes)).Msg("Fetched tide extremes")
	return extremes, nil
}
