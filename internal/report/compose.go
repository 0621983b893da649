// Package report builds every outbound message. Composers are pure
// functions over already-fetched data so they can be tested with synthetic
// grids; the Service wires them to the fetchers and degrades missing
// sections instead of failing a whole report.
package report

import (
	"fmt"
	"strings"

	"github.com/surfwatch/surfbot/internal/models"
)

// SpotForecast pairs a tracked spot with its fetched grid. Unavailable is
// set when the fetch itself failed; a fetched-but-empty grid is also
// rendered as unavailable.
type SpotForecast struct {
	Spot        models.Spot
	Grid        models.ForecastGrid
	Unavailable bool
}

func (sf SpotForecast) usable() bool {
	return !sf.Unavailable && sf.Grid.HasWaveData()
}

const (
	dateLayout     = "Monday Jan 02"
	dateTimeLayout = "Monday Jan 02, 03:04 PM"
)

func divider(n int) string {
	return strings.Repeat("━", n)
}

func heightText(grid models.ForecastGrid, idx int) string {
	if h, ok := grid.HeightAt(idx); ok {
		return fmt.Sprintf("%d", h)
	}
	return "?"
}

func periodText(grid models.ForecastGrid, idx int) string {
	if p, ok := grid.PeriodAt(idx); ok {
		return fmt.Sprintf("%d", p)
	}
	return "?"
}
