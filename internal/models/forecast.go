package models

import "strconv"

// Forecast slot periods. Each forecast day carries three slots in source
// order: AM, PM, Night. Night is captured but the selectors only look at
// AM and PM.
const (
	PeriodAM = iota
	PeriodPM
	PeriodNight

	PeriodsPerDay = 3
	ForecastDays  = 7
	MaxSlots      = ForecastDays * PeriodsPerDay
)

// SlotIndex maps a (day, period) pair onto the flat grid index.
func SlotIndex(day, period int) int {
	return day*PeriodsPerDay + period
}

// ForecastGrid is the normalized result of scraping one spot's forecast
// page: up to 21 chronological slots starting today. Any sequence may be
// shorter than 21 on a partial scrape; indexes past the end of a sequence
// mean "unknown", never a fault.
type ForecastGrid struct {
	Ratings       []string
	WaveHeightsFt []int
	PeriodsS      []int
	WindStates    []string
	WaterTempF    *int
}

// RatingAt returns the parsed rating for a slot. The second return is false
// when the slot is missing or the scraped value is not an integer.
func (g ForecastGrid) RatingAt(idx int) (int, bool) {
	if idx < 0 || idx >= len(g.Ratings) {
		return 0, false
	}
	r, err := strconv.Atoi(g.Ratings[idx])
	if err != nil {
		return 0, false
	}
	return r, true
}

// RatingTextAt returns the raw scraped rating text, or "?" when missing.
func (g ForecastGrid) RatingTextAt(idx int) string {
	if idx < 0 || idx >= len(g.Ratings) {
		return "?"
	}
	return g.Ratings[idx]
}

func (g ForecastGrid) HeightAt(idx int) (int, bool) {
	if idx < 0 || idx >= len(g.WaveHeightsFt) {
		return 0, false
	}
	return g.WaveHeightsFt[idx], true
}

func (g ForecastGrid) PeriodAt(idx int) (int, bool) {
	if idx < 0 || idx >= len(g.PeriodsS) {
		return 0, false
	}
	return g.PeriodsS[idx], true
}

// WindAt returns the raw wind-state text for a slot, empty when missing.
func (g ForecastGrid) WindAt(idx int) string {
	if idx < 0 || idx >= len(g.WindStates) {
		return ""
	}
	return g.WindStates[idx]
}

// HasWaveData reports whether the scrape produced any usable slots. Reports
// substitute an "unavailable" placeholder when it is false.
func (g ForecastGrid) HasWaveData() bool {
	return len(g.WaveHeightsFt) > 0
}

// DaySlotEntry is one selectable (day, AM/PM) observation derived from a
// ForecastGrid.
type DaySlotEntry struct {
	Day      string
	Period   string
	Rating   int
	HeightFt int
	PeriodS  int
	Wind     string
}

// SentinelRating marks "no valid slot found", distinct from any real 0-10
// rating.
const SentinelRating = -1

// WindowSelection holds the best weekend slot and every PTO-worthy weekday
// slot for one spot.
type WindowSelection struct {
	WeekendBest DaySlotEntry
	PTOWorthy   []DaySlotEntry
}

// NewWindowSelection returns a selection with the weekend sentinel in place.
func NewWindowSelection() WindowSelection {
	return WindowSelection{
		WeekendBest: DaySlotEntry{Period: "AM", Rating: SentinelRating},
	}
}

// HasWeekendBest reports whether any weekend slot qualified.
func (w WindowSelection) HasWeekendBest() bool {
	return w.WeekendBest.Rating > SentinelRating
}

// CountyRankingEntry is one spot from the region listing page.
type CountyRankingEntry struct {
	Name   string
	Rating int
}
