package models

import "time"

// Spot is one tracked surf break: the display name shown in reports and the
// slug used to build the forecast page URL.
type Spot struct {
	Name string
	Slug string
}

type Region string

const (
	RegionLocal  Region = "local"
	RegionTravel Region = "travel"
)

// BeachLocation is static reference data for beach-mode reports. Loaded once
// at startup and never mutated.
type BeachLocation struct {
	Code      string
	Name      string
	Region    Region
	Latitude  float64
	Longitude float64
	HasCoords bool
	// StationID is the NOAA CO-OPS tide station used for this beach, when
	// one is close enough to be useful.
	StationID string
	Address   string
	Note      string
	Focus     []string
	Spots     []string
}

// SchoolBreak is one entry of the school calendar. Dates are inclusive
// "2006-01-02" strings in the bot's time zone.
type SchoolBreak struct {
	Start string
	End   string
	Name  string
}

type SchoolCalendar []SchoolBreak

const breakDateLayout = "2006-01-02"

// StartingOn returns the break that begins on the given day, if any.
func (c SchoolCalendar) StartingOn(t time.Time) (string, bool) {
	day := t.Format(breakDateLayout)
	for _, b := range c {
		if day == b.Start {
			return b.Name, true
		}
	}
	return "", false
}

// Covering returns the break containing the given day, if any. String
// comparison is safe because the layout is lexicographically ordered.
func (c SchoolCalendar) Covering(t time.Time) (string, bool) {
	day := t.Format(breakDateLayout)
	for _, b := range c {
		if b.Start <= day && day <= b.End {
			return b.Name, true
		}
	}
	return "", false
}
