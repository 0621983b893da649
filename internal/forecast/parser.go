package forecast

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/units"
)

var (
	decimalRe = regexp.MustCompile(`[\d.]+`)
	integerRe = regexp.MustCompile(`\d+`)

	// Water temperature mentions, tried in order; the first match wins.
	// The bare degree pattern comes last so a labeled reading is preferred
	// over a stray number.
	waterTempRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)water[:\s]\s*(\d+\.?\d*)\s*°?\s*C`),
		regexp.MustCompile(`(?i)sea[:\s]\s*(\d+\.?\d*)\s*°?\s*C`),
		regexp.MustCompile(`(?i)temperature[:\s]\s*(\d+\.?\d*)\s*°?\s*C`),
		regexp.MustCompile(`(\d+\.?\d*)\s*°\s*C`),
	}
)

// ParseGrid extracts the 7-day x 3-period forecast grid from a spot page.
// It never fails: rows that cannot be located leave the matching sequence
// empty, malformed cells degrade to zero values, and undecodable markup
// yields an empty grid.
func ParseGrid(html string) models.ForecastGrid {
	var grid models.ForecastGrid

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("forecast page did not parse as HTML")
		return grid
	}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		label := strings.ToLower(strings.TrimSpace(cells.First().Text()))
		values := rowValues(cells)

		switch {
		case strings.Contains(label, "rating") || strings.Contains(label, "star"):
			grid.Ratings = values
		case strings.Contains(label, "wave height") || strings.Contains(label, "wave (m)") || strings.Contains(label, "size"):
			grid.WaveHeightsFt = make([]int, len(values))
			for i, v := range values {
				grid.WaveHeightsFt[i] = units.MetersToFeet(firstNumber(decimalRe, v))
			}
		case strings.HasPrefix(label, "period"):
			grid.PeriodsS = make([]int, len(values))
			for i, v := range values {
				n, _ := strconv.Atoi(firstNumber(integerRe, v))
				grid.PeriodsS[i] = n
			}
		case strings.Contains(label, "wind state") || strings.Contains(label, "wind"):
			grid.WindStates = values
		}
	})

	if tempF, ok := parseWaterTemp(html); ok {
		grid.WaterTempF = &tempF
	}

	return grid
}

// rowValues extracts up to MaxSlots cell values following the label cell.
// Preference per cell: star icon count, explicit data-value attribute, then
// visible text. The first source that yields something wins; sources are
// never combined.
func rowValues(cells *goquery.Selection) []string {
	var values []string
	cells.Slice(1, cells.Length()).EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if i >= models.MaxSlots {
			return false
		}
		values = append(values, cellValue(cell))
		return true
	})
	return values
}

func cellValue(cell *goquery.Selection) string {
	if stars := cell.Find(`[class*="star"]`).Length(); stars > 0 {
		return strconv.Itoa(stars)
	}
	if v, ok := cell.Attr("data-value"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(cell.Text())
}

// firstNumber pulls the first numeric token out of a cell, defaulting to "0"
// so one malformed cell never aborts the grid.
func firstNumber(re *regexp.Regexp, s string) string {
	if m := re.FindString(s); m != "" {
		return m
	}
	return "0"
}

// parseWaterTemp scans the whole document for a keyword-qualified Celsius
// reading and converts it to Fahrenheit. No match means the temperature is
// simply unknown; unrelated numbers are never guessed from.
func parseWaterTemp(html string) (int, bool) {
	for _, re := range waterTempRes {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		c, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return units.CelsiusToFahrenheit(c), true
	}
	return 0, false
}
