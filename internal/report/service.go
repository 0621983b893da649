package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/commute"
	"github.com/surfwatch/surfbot/internal/config"
	"github.com/surfwatch/surfbot/internal/forecast"
	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/tide"
	"github.com/surfwatch/surfbot/internal/weather"
	"github.com/surfwatch/surfbot/internal/windows"
)

// Service glues the fetchers to the composers. Every fetch is best-effort:
// a failed source degrades its section of the report and the rest is still
// produced.
type Service struct {
	cfg       *config.Config
	forecasts *forecast.Service
	weather   *weather.Client
	tides     *tide.Client
	commutes  *commute.Service

	// now is injectable so composer output can be pinned in tests.
	now func() time.Time
}

func NewService(cfg *config.Config, forecasts *forecast.Service, weatherClient *weather.Client,
	tides *tide.Client, commutes *commute.Service) *Service {
	return &Service{
		cfg:       cfg,
		forecasts: forecasts,
		weather:   weatherClient,
		tides:     tides,
		commutes:  commutes,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Now is the current time in the bot's configured zone.
func (s *Service) Now() time.Time {
	return s.now().In(s.cfg.TimeZone)
}

func (s *Service) fetchSpot(ctx context.Context, spot models.Spot) SpotForecast {
	grid, err := s.forecasts.FetchSpot(ctx, spot.Slug)
	if err != nil {
		log.Error().Err(err).Str("spot", spot.Slug).Msg("Spot forecast unavailable")
		return SpotForecast{Spot: spot, Unavailable: true}
	}
	return SpotForecast{Spot: spot, Grid: grid}
}

func (s *Service) fetchRankings(ctx context.Context) []models.CountyRankingEntry {
	rankings, err := s.forecasts.FetchCountyRankings(ctx, s.cfg.CountyRegion)
	if err != nil {
		log.Error().Err(err).Msg("County rankings unavailable")
		return nil
	}
	return rankings
}

// Daily builds the scheduled 7-day report.
func (s *Service) Daily(ctx context.Context) string {
	now := s.Now()
	days := windows.DayNames(now)

	spots := make([]SpotForecast, 0, len(s.cfg.Spots))
	for _, spot := range s.cfg.Spots {
		spots = append(spots, s.fetchSpot(ctx, spot))
	}

	return ComposeDaily(now, days, spots, s.fetchRankings(ctx), s.cfg.PTOThreshold)
}

// SurfNow builds the condensed blast for /surf and the hourly ticker.
func (s *Service) SurfNow(ctx context.Context) string {
	now := s.Now()
	days := windows.DayNames(now)

	rankings := s.fetchRankings(ctx)

	var primary *SpotForecast
	if len(s.cfg.Spots) > 0 {
		sf := s.fetchSpot(ctx, s.cfg.Spots[0])
		primary = &sf
	}

	picks := s.beachPicks(ctx)
	commutes := s.commutes.BeachTimes(ctx, s.pickBeaches())

	breakName, _ := s.cfg.SchoolBreaks.Covering(now)

	return ComposeSurfNow(now, days, rankings, primary, picks, commutes, breakName)
}

// pickBeaches returns the default top-3 beach picks from the location table.
func (s *Service) pickBeaches() []models.BeachLocation {
	var picks []models.BeachLocation
	for _, code := range []string{"carp", "belmont", "paradise"} {
		if b, ok := config.FindBeach(s.cfg.Beaches, code); ok {
			picks = append(picks, b)
		}
	}
	return picks
}

var pickNotes = map[string]string{
	"carp":     "calm, kid-friendly",
	"belmont":  "close, light chop",
	"paradise": "scenic, $$$ parking",
}

func (s *Service) beachPicks(ctx context.Context) []BeachPick {
	var picks []BeachPick
	for _, b := range s.pickBeaches() {
		picks = append(picks, BeachPick{
			Name: commutePickNames[b.Code],
			Temp: s.airTempText(ctx, b),
			Note: pickNotes[b.Code],
		})
	}
	return picks
}

// airTempText is the best-effort "68°F" reading for a beach, "?" when the
// lookup fails or the beach has no coordinates.
func (s *Service) airTempText(ctx context.Context, b models.BeachLocation) string {
	if !b.HasCoords {
		return "?"
	}
	temp, err := s.weather.LatestAirTempF(ctx, b.Latitude, b.Longitude)
	if err != nil {
		log.Warn().Err(err).Str("beach", b.Code).Msg("Air temp unavailable")
		return "?"
	}
	return fmt.Sprintf("%d°F", temp)
}

// LocalOverview builds the /local digest.
func (s *Service) LocalOverview(ctx context.Context) string {
	now := s.Now()

	temps := make(map[string]string)
	for _, b := range s.cfg.Beaches {
		if b.Region == models.RegionLocal && b.HasCoords {
			temps[b.Code] = s.airTempText(ctx, b)
		}
	}

	return ComposeLocalOverview(now, s.cfg.Beaches, temps)
}

// BeachReport builds the /beach [code] detail, or the code directory when
// code is empty. A bad code yields the "Unknown location" message.
func (s *Service) BeachReport(ctx context.Context, code string) string {
	if code == "" {
		return ComposeBeachList(s.cfg.Beaches)
	}

	loc, ok := config.FindBeach(s.cfg.Beaches, code)
	if !ok {
		return UnknownLocation(code)
	}

	now := s.Now()

	var extremes []tide.Extreme
	if loc.StationID != "" {
		var err error
		extremes, err = s.tides.DayExtremes(ctx, loc.StationID, now, s.cfg.TimeZone)
		if err != nil {
			log.Warn().Err(err).Str("station", loc.StationID).Msg("Tide extremes unavailable")
			extremes = nil
		}
	}

	var airTempF *int
	if loc.HasCoords {
		if temp, err := s.weather.LatestAirTempF(ctx, loc.Latitude, loc.Longitude); err == nil {
			airTempF = &temp
		}
	}

	return ComposeBeachReport(now, loc, extremes, airTempF)
}

// CoastOverview builds the /coast road-trip digest from the per-region
// ranking pages.
func (s *Service) CoastOverview(ctx context.Context) string {
	now := s.Now()

	regions := make([]RegionSummary, 0, len(s.cfg.CoastRegions))
	for _, slug := range s.cfg.CoastRegions {
		summary := RegionSummary{Name: RegionDisplayName(slug)}
		rankings, err := s.forecasts.FetchCountyRankings(ctx, slug)
		if err != nil {
			log.Warn().Err(err).Str("region", slug).Msg("Coast region unavailable")
		} else if len(rankings) > 0 {
			top := rankings[0]
			summary.Top = &top
		}
		regions = append(regions, summary)
	}

	return ComposeCoast(now, regions)
}

// WeekendBeachDigest builds the Saturday family digest. Empty when the
// feature is off or it is not Saturday.
func (s *Service) WeekendBeachDigest(ctx context.Context) string {
	if !s.cfg.WeekendBeachDigest {
		return ""
	}

	now := s.Now()
	if now.Weekday() != time.Saturday {
		return ""
	}

	carpTemp, belmontTemp := "?", "?"
	if b, ok := config.FindBeach(s.cfg.Beaches, "carp"); ok {
		carpTemp = s.airTempText(ctx, b)
	}
	if b, ok := config.FindBeach(s.cfg.Beaches, "belmont"); ok {
		belmontTemp = s.airTempText(ctx, b)
	}

	return ComposeWeekendBeachDigest(now, carpTemp, belmontTemp)
}

// EveningAlerts returns the messages due at the evening check: a
// school-break-eve alert and a heat-wave alert, each independently gated.
func (s *Service) EveningAlerts(ctx context.Context) []string {
	now := s.Now()
	var msgs []string

	if s.cfg.SchoolBreakAlerts {
		if name, ok := s.cfg.SchoolBreaks.StartingOn(now.AddDate(0, 0, 1)); ok {
			msgs = append(msgs, ComposeSchoolBreakAlert(name))
		}
	}

	if s.cfg.HeatWaveAlerts {
		high, err := s.weather.ForecastHighF(ctx, s.cfg.HomeLatitude, s.cfg.HomeLongitude, now.AddDate(0, 0, 1))
		if err != nil {
			log.Warn().Err(err).Msg("Inland forecast unavailable, skipping heat check")
		} else if high >= s.cfg.HeatThresholdF {
			msgs = append(msgs, ComposeHeatWaveAlert(high))
		}
	}

	return msgs
}

// OnlineBanner is the startup hello.
func (s *Service) OnlineBanner() string {
	return ComposeOnlineBanner(s.Now())
}
