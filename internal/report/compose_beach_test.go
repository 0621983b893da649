package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/surfwatch/surfbot/internal/config"
	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/tide"
)

func TestComposeLocalOverview(t *testing.T) {
	beaches := config.DefaultBeaches()
	temps := map[string]string{"carp": "74°F", "belmont": "70°F"}

	msg := ComposeLocalOverview(testNow, beaches, temps)

	assert.Contains(t, msg, "🏖 <b>Your SoCal Beaches</b>")
	assert.Contains(t, msg, "<b>Santa Barbara</b>")
	assert.Contains(t, msg, "🌡74°F")
	assert.Contains(t, msg, "🌡?", "beaches without a reading fall back to ?")
	assert.Contains(t, msg, "Use /beach [code] for details")
	assert.Contains(t, msg, "carp")
	assert.NotContains(t, msg, "spo,", "travel beaches stay out of the local overview codes")
}

func TestComposeBeachList(t *testing.T) {
	msg := ComposeBeachList(config.DefaultBeaches())

	assert.Contains(t, msg, "<b>TRAVEL</b>")
	assert.Contains(t, msg, "• spo - Sankt Peter-Ording")
	assert.Contains(t, msg, "<b>LOCAL FAVORITES</b>")
	assert.Contains(t, msg, "• carp - Carpinteria State Beach")
	assert.Contains(t, msg, "Example: /beach carp")
}

func TestUnknownLocation(t *testing.T) {
	assert.Equal(t, "Unknown location: xyz\n\nType /beach for all options.", UnknownLocation("xyz"))
}

func TestComposeBeachReportLocal(t *testing.T) {
	loc, ok := config.FindBeach(config.DefaultBeaches(), "carp")
	assert.True(t, ok)

	extremes := []tide.Extreme{
		{Type: tide.ExtremeLow, Time: time.Date(2026, 8, 28, 6, 42, 0, 0, time.UTC), HeightFt: 0.3},
		{Type: tide.ExtremeHigh, Time: time.Date(2026, 8, 28, 12, 58, 0, 0, time.UTC), HeightFt: 5.1},
	}
	temp := 73

	msg := ComposeBeachReport(testNow, loc, extremes, &temp)

	assert.Contains(t, msg, "<b>Carpinteria State Beach</b>")
	assert.Contains(t, msg, "🌊 Low:  06:42  (0.3ft)")
	assert.Contains(t, msg, "🌊 High: 12:58  (5.1ft)")
	assert.Contains(t, msg, "🌡 Air: 73°F")
	if loc.Note != "" {
		assert.Contains(t, msg, loc.Note)
	}
}

func TestComposeBeachReportLocalDegraded(t *testing.T) {
	loc := models.BeachLocation{Code: "belmont", Name: "Belmont Shore", Region: models.RegionLocal}

	msg := ComposeBeachReport(testNow, loc, nil, nil)

	assert.Contains(t, msg, "<b>Tides</b>\n<i>Data unavailable</i>")
	assert.Contains(t, msg, "<b>Temps</b>\n<i>Data unavailable</i>")
}

func TestComposeBeachReportTravelGuides(t *testing.T) {
	beaches := config.DefaultBeaches()

	spo, _ := config.FindBeach(beaches, "spo")
	msg := ComposeBeachReport(testNow, spo, nil, nil)
	assert.Contains(t, msg, "(for kiting)")
	assert.Contains(t, msg, "💧 Water: 54°F (12°C) - Full wetsuit")

	van, _ := config.FindBeach(beaches, "van")
	msg = ComposeBeachReport(testNow, van, nil, nil)
	assert.Contains(t, msg, "(English Bay)")
	assert.Contains(t, msg, "• Kitsilano - Warmer (shallow)")
}

func TestRegionDisplayName(t *testing.T) {
	assert.Equal(t, "VENTURA COUNTY", RegionDisplayName("Ventura-County"))
	assert.Equal(t, "SANTA BARBARA", RegionDisplayName("santa-barbara"))
}

func TestComposeCoast(t *testing.T) {
	regions := []RegionSummary{
		{Name: "VENTURA COUNTY", Top: &models.CountyRankingEntry{Name: "C Street", Rating: 5}},
		{Name: "SAN DIEGO COUNTY", Top: &models.CountyRankingEntry{Name: "Blacks", Rating: 4}},
		{Name: "ORANGE COUNTY"},
	}

	msg := ComposeCoast(testNow, regions)

	assert.Contains(t, msg, "🚗 <b>California Coast</b>")
	assert.Contains(t, msg, "<b>VENTURA COUNTY</b>\n⭐5  C Street best")
	assert.Contains(t, msg, "<b>ORANGE COUNTY</b>\n<i>Data unavailable</i>")
	assert.Contains(t, msg, "Ventura County is the call today. C Street at ⭐5 is worth the drive.")
}

func TestComposeCoastWeakVerdict(t *testing.T) {
	regions := []RegionSummary{
		{Name: "VENTURA COUNTY", Top: &models.CountyRankingEntry{Name: "C Street", Rating: 2}},
	}
	msg := ComposeCoast(testNow, regions)
	assert.Contains(t, msg, "Nothing on the coast worth a road trip today.")

	msg = ComposeCoast(testNow, []RegionSummary{{Name: "VENTURA COUNTY"}})
	assert.Contains(t, msg, "Coast data unavailable today.")
}
