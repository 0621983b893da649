// Package commute looks up drive times between home and the beaches via the
// Google Distance Matrix API. The whole feature is optional: without an API
// key the service reports nothing and callers skip the section.
package commute

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/models"
)

// Times holds the human-readable to/back durations for one beach. "?" marks
// a leg that could not be resolved.
type Times struct {
	To   string
	Back string
}

type Service struct {
	client *resty.Client
	apiKey string
	home   string
}

func NewService(client *resty.Client, apiKey, homeAddress string) *Service {
	return &Service{
		client: client,
		apiKey: apiKey,
		home:   homeAddress,
	}
}

// Enabled reports whether an API key was configured.
func (s *Service) Enabled() bool {
	return s.apiKey != ""
}

type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Duration *struct {
				Text string `json:"text"`
			} `json:"duration"`
			DurationInTraffic *struct {
				Text string `json:"text"`
			} `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
}

func (r matrixResponse) durationText() string {
	if len(r.Rows) == 0 || len(r.Rows[0].Elements) == 0 {
		return "?"
	}
	elem := r.Rows[0].Elements[0]
	if elem.DurationInTraffic != nil {
		return elem.DurationInTraffic.Text
	}
	if elem.Duration != nil {
		return elem.Duration.Text
	}
	return "?"
}

func (s *Service) duration(ctx context.Context, origin, destination string) string {
	var result matrixResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"origins":        origin,
			"destinations":   destination,
			"departure_time": "now",
			"key":            s.apiKey,
		}).
		SetResult(&result).
		Get("/maps/api/distancematrix/json")
	if err != nil || resp.IsError() {
		log.Warn().Err(err).Str("destination", destination).Msg("Commute lookup failed")
		return "?"
	}
	return result.durationText()
}

// BeachTimes returns to/back drive times for each beach that has an address.
// A nil map means the feature is disabled; individual failures degrade to
// "?" rather than dropping the beach.
func (s *Service) BeachTimes(ctx context.Context, beaches []models.BeachLocation) map[string]Times {
	if !s.Enabled() {
		return nil
	}

	results := make(map[string]Times)
	for _, b := range beaches {
		if b.Address == "" {
			continue
		}
		results[b.Code] = Times{
			To:   s.duration(ctx, s.home, b.Address),
			Back: s.duration(ctx, b.Address, s.home),
		}
	}
	return results
}
