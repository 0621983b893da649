// Package windows picks the viewing windows out of a forecast grid: the
// single best weekend slot plus every weekday slot good enough to burn PTO
// on.
package windows

import (
	"time"

	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/units"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// PeriodNames are the slot periods the selector consults, in scan order.
// The Night slot exists in the grid but is never selected from.
var PeriodNames = [2]string{"AM", "PM"}

// DayNames returns seven three-letter day names rotated so index 0 is
// today in the given time.
func DayNames(now time.Time) []string {
	// time.Weekday is Sunday-based; the table is Monday-based.
	today := (int(now.Weekday()) + 6) % 7
	names := make([]string, 7)
	for i := range names {
		names[i] = dayNames[(today+i)%7]
	}
	return names
}

// IsWeekend classifies a rotated day name.
func IsWeekend(day string) bool {
	return day == "Sat" || day == "Sun"
}

// Select walks every AM/PM slot across the seven days and produces the
// weekend best plus the PTO-worthy weekday candidates. Slots whose rating
// is missing or unparseable are excluded, not zeroed. The weekend best only
// moves on a strictly higher rating, so the first-seen slot wins ties.
func Select(grid models.ForecastGrid, days []string, ptoThreshold int) models.WindowSelection {
	sel := models.NewWindowSelection()

	for i, day := range days {
		if i >= models.ForecastDays {
			break
		}
		for p, perName := range PeriodNames {
			idx := models.SlotIndex(i, p)
			rating, ok := grid.RatingAt(idx)
			if !ok {
				continue
			}

			height, _ := grid.HeightAt(idx)
			periodS, _ := grid.PeriodAt(idx)
			entry := models.DaySlotEntry{
				Day:      day,
				Period:   perName,
				Rating:   rating,
				HeightFt: height,
				PeriodS:  periodS,
				Wind:     units.WindStateText(grid.WindAt(idx)),
			}

			if IsWeekend(day) {
				if rating > sel.WeekendBest.Rating {
					sel.WeekendBest = entry
				}
			} else if rating >= ptoThreshold {
				sel.PTOWorthy = append(sel.PTOWorthy, entry)
			}
		}
	}

	return sel
}

// PTOCallout returns the weekday slot worth highlighting over the weekend.
// The callout only fires when the best weekday beats the weekend best by
// more than one point; ties and one-point edges stay quiet so marginal
// differences do not generate noise.
func PTOCallout(sel models.WindowSelection) (models.DaySlotEntry, bool) {
	if len(sel.PTOWorthy) == 0 {
		return models.DaySlotEntry{}, false
	}

	top := sel.PTOWorthy[0]
	for _, e := range sel.PTOWorthy[1:] {
		if e.Rating > top.Rating {
			top = e
		}
	}

	if top.Rating > sel.WeekendBest.Rating+1 {
		return top, true
	}
	return models.DaySlotEntry{}, false
}
