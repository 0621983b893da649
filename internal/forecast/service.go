// Package forecast scrapes surf-forecast pages into normalized grids and
// region rankings. Fetching and parsing are separable: the parsers are pure
// and callable without network access.
package forecast

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/models"
)

type Service struct {
	client *resty.Client
}

func NewService(client *resty.Client) *Service {
	return &Service{client: client}
}

// FetchSpot downloads and parses the 7-day forecast page for one spot slug.
// Network and HTTP failures are the only error mode; a page that fetches
// always parses into a (possibly partial) grid.
func (s *Service) FetchSpot(ctx context.Context, slug string) (models.ForecastGrid, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/breaks/%s/forecasts/latest/six_day", slug))
	if err != nil {
		return models.ForecastGrid{}, fmt.Errorf("fetching spot %s: %w", slug, err)
	}
	if resp.IsError() {
		return models.ForecastGrid{}, fmt.Errorf("fetching spot %s: status %d", slug, resp.StatusCode())
	}

	log.Debug().Str("slug", slug).Int("bytes", len(resp.Body())).Msg("Fetched spot forecast")
	return ParseGrid(string(resp.Body())), nil
}

// FetchCountyRankings downloads and parses the region listing page.
func (s *Service) FetchCountyRankings(ctx context.Context, region string) ([]models.CountyRankingEntry, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/regions/%s", region))
	if err != nil {
		return nil, fmt.Errorf("fetching region %s: %w", region, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching region %s: status %d", region, resp.StatusCode())
	}

	spots := ParseCountyRankings(string(resp.Body()))
	log.Debug().Str("region", region).Int("spot_count", len(spots)).Msg("Fetched county rankings")
	return spots, nil
}
